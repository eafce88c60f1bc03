package interfaces

// Terminal is the line-based console the ledger talks through.
type Terminal interface {
	// PromptLine writes prompt and blocks until one line of input is available.
	// The line is returned without its terminator.
	PromptLine(prompt string) (string, error)
	PrintLine(text string)
	Close() error
}
