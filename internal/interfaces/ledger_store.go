package interfaces

import "github.com/shopspring/decimal"

// LedgerStore owns the account balance. It does not validate what it is given;
// business rules live in the ledger package.
type LedgerStore interface {
	Read() decimal.Decimal
	Write(balance decimal.Decimal)
}
