package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind says which way money moved.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// Transaction describes one balance change that was applied.
// It only lives long enough to be logged; nothing keeps a history.
type Transaction struct {
	ID            uuid.UUID
	Kind          TransactionKind
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	CreatedAt     time.Time
}

// NewTransaction stamps a balance change with a fresh ID and the current time.
func NewTransaction(kind TransactionKind, amount, before, after decimal.Decimal) Transaction {
	return Transaction{
		ID:            uuid.New(),
		Kind:          kind,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Now(),
	}
}
