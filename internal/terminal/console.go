// Package terminal implements the line-oriented console the ledger runs on.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
)

// ErrInputClosed means the input stream ended while a prompt was waiting.
var ErrInputClosed = errors.New("input stream closed")

// Console reads lines from in and writes lines to out.
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	closed bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// PromptLine writes prompt without a newline and blocks for one line of input.
// A final line with no terminator is still returned; after that the
// console reports ErrInputClosed.
func (c *Console) PromptLine(prompt string) (string, error) {
	if c.closed {
		return "", ErrInputClosed
	}
	_, _ = io.WriteString(c.out, prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return trimEOL(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return trimEOL(line), nil
}

// PrintLine writes text followed by a newline. Write errors are dropped.
func (c *Console) PrintLine(text string) {
	_, _ = io.WriteString(c.out, text+"\n")
}

// Close releases the input if it can be closed. Calling it again is a no-op.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.in.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

var _ interfaces.Terminal = (*Console)(nil)
