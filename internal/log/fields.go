package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldSessionID     = "session_id"
	FieldTransactionID = "transaction_id"
	FieldKind          = "kind"
	FieldAmount        = "amount"
	FieldBalanceBefore = "balance_before"
	FieldBalance       = "balance"
	FieldCreatedAt     = "created_at"
	FieldInput         = "input"
	FieldChoice        = "choice"
	FieldError         = "error"
)

const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentMenu   = "menu"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)
