// Package menu drives the interactive session: show the menu, read a choice,
// run it, repeat until the user exits.
package menu

import (
	"fmt"

	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	applog "github.com/sheikh-saqib/account-ledger/internal/log"
	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// Operations is what the menu dispatches to. *ledger.Ledger satisfies it.
type Operations interface {
	ViewBalance()
	PromptCredit() error
	PromptDebit() error
}

var banner = []string{
	"--------------------------------",
	"Account Management System",
	"1. View Balance",
	"2. Credit Account",
	"3. Debit Account",
	"4. Exit",
	"--------------------------------",
}

const (
	promptChoice = "Enter your choice (1-4): "
	msgBadChoice = "Invalid choice, please select 1-4."
	msgGoodbye   = "Exiting the program. Goodbye!"
)

type Loop struct {
	ops    Operations
	term   interfaces.Terminal
	logger *applog.Logger
}

func NewLoop(ops Operations, term interfaces.Terminal, logger *applog.Logger) *Loop {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Loop{
		ops:    ops,
		term:   term,
		logger: logger.WithComponent(applog.ComponentMenu),
	}
}

// Run blocks until the user picks Exit, then says goodbye and closes the terminal.
// It returns an error only when reading input fails; bad input never stops the loop.
func (m *Loop) Run() error {
	for running := true; running; {
		m.showMenu()

		text, err := m.term.PromptLine(promptChoice)
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice := models.ParseChoice(text)
		m.logger.Debug("menu choice", applog.FieldInput, text, applog.FieldChoice, choice.String())

		switch choice {
		case models.ChoiceViewBalance:
			m.ops.ViewBalance()
		case models.ChoiceCredit:
			err = m.ops.PromptCredit()
		case models.ChoiceDebit:
			err = m.ops.PromptDebit()
		case models.ChoiceExit:
			running = false
		default:
			m.term.PrintLine(msgBadChoice)
		}
		if err != nil {
			return err
		}
	}

	m.term.PrintLine(msgGoodbye)
	if err := m.term.Close(); err != nil {
		m.logger.Warn("closing terminal", applog.FieldError, err)
	}
	return nil
}

func (m *Loop) showMenu() {
	for _, line := range banner {
		m.term.PrintLine(line)
	}
}
