package memory

import (
	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces" // interface LedgerStore
	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// MemoryLedgerStore is an in-memory implementation of interfaces.LedgerStore.
// It holds the one balance for the lifetime of the process. Access is sequential
// (a single menu loop drives it), so there is no mutex.
type MemoryLedgerStore struct {
	balance decimal.Decimal
}

// NewMemoryLedgerStore creates a store opening at the given balance.
func NewMemoryLedgerStore(initial decimal.Decimal) *MemoryLedgerStore {
	return &MemoryLedgerStore{balance: initial}
}

// NewDefaultLedgerStore creates a store opening at models.InitialBalance.
func NewDefaultLedgerStore() *MemoryLedgerStore {
	return NewMemoryLedgerStore(models.InitialBalance)
}

// Read returns the current balance.
func (m *MemoryLedgerStore) Read() decimal.Decimal {
	return m.balance
}

// Write replaces the stored balance unconditionally.
func (m *MemoryLedgerStore) Write(balance decimal.Decimal) {
	m.balance = balance
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore interface
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
