// Package terminaltest provides a scripted terminal for tests.
package terminaltest

import (
	"github.com/sheikh-saqib/account-ledger/internal/terminal"
)

// Fake replays scripted input lines and records everything written.
// Once the script runs out, PromptLine fails with terminal.ErrInputClosed.
type Fake struct {
	Input   []string
	Prompts []string
	Lines   []string
	Closed  bool
}

// New returns a Fake that will answer prompts with lines, in order.
func New(lines ...string) *Fake {
	return &Fake{Input: lines}
}

func (f *Fake) PromptLine(prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Closed || len(f.Input) == 0 {
		return "", terminal.ErrInputClosed
	}
	line := f.Input[0]
	f.Input = f.Input[1:]
	return line, nil
}

func (f *Fake) PrintLine(text string) {
	f.Lines = append(f.Lines, text)
}

func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
