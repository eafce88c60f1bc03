package ledger

import (
	"errors"

	"github.com/sheikh-saqib/account-ledger/internal/models"
)

var (
	// ErrInvalidAmount amount text is non-numeric or negative
	ErrInvalidAmount = models.ErrInvalidAmount

	// ErrInsufficientFunds debit exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// User-facing messages.
const (
	msgInvalidAmount     = "Invalid amount. Please enter a valid positive number."
	msgInsufficientFunds = "Insufficient funds for this debit."
	msgCurrentBalance    = "Current balance: %s"
	msgCredited          = "Amount credited. New balance: %s"
	msgDebited           = "Amount debited. New balance: %s"

	promptCredit = "Enter credit amount: "
	promptDebit  = "Enter debit amount: "
)
