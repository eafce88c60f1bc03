package models

import (
	"strconv"
	"strings"
)

// Choice is one entry of the main menu.
type Choice int

const (
	ChoiceUnrecognized Choice = iota
	ChoiceViewBalance
	ChoiceCredit
	ChoiceDebit
	ChoiceExit
)

// ParseChoice maps menu input to a Choice. Anything that is not a whole
// integer between 1 and 4 is ChoiceUnrecognized.
func ParseChoice(text string) Choice {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return ChoiceUnrecognized
	}

	switch c := Choice(n); c {
	case ChoiceViewBalance, ChoiceCredit, ChoiceDebit, ChoiceExit:
		return c
	default:
		return ChoiceUnrecognized
	}
}

func (c Choice) String() string {
	switch c {
	case ChoiceViewBalance:
		return "view_balance"
	case ChoiceCredit:
		return "credit"
	case ChoiceDebit:
		return "debit"
	case ChoiceExit:
		return "exit"
	default:
		return "unrecognized"
	}
}
