package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	applog "github.com/sheikh-saqib/account-ledger/internal/log"
	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// Ledger applies the account's business rules on top of a LedgerStore.
// Every outcome, including rejections, is reported to the user through the terminal.
type Ledger struct {
	store  interfaces.LedgerStore // holds the balance, can be any storage implementation
	term   interfaces.Terminal
	logger *applog.Logger
}

// NewLedger wires the operations to a store and a terminal.
func NewLedger(store interfaces.LedgerStore, term interfaces.Terminal, logger *applog.Logger) *Ledger {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Ledger{
		store:  store,
		term:   term,
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// Balance returns the current balance without printing anything.
func (l *Ledger) Balance() decimal.Decimal {
	return l.store.Read()
}

// ViewBalance prints the current balance.
func (l *Ledger) ViewBalance() {
	balance := l.store.Read()
	l.term.PrintLine(fmt.Sprintf(msgCurrentBalance, models.FormatAmount(balance)))
}

// Credit adds the amount in amountText to the balance.
// A rejected amount is reported to the user and returned as ErrInvalidAmount.
func (l *Ledger) Credit(amountText string) error {
	amount, err := l.parseAmount(amountText)
	if err != nil {
		return err
	}

	before := l.store.Read()
	after := before.Add(amount)
	l.store.Write(after)

	l.record(models.NewTransaction(models.TransactionCredit, amount, before, after))
	l.term.PrintLine(fmt.Sprintf(msgCredited, models.FormatAmount(after)))
	return nil
}

// Debit subtracts the amount in amountText from the balance if the balance covers it.
// Debiting the whole balance is allowed and leaves exactly zero.
func (l *Ledger) Debit(amountText string) error {
	amount, err := l.parseAmount(amountText)
	if err != nil {
		return err
	}

	before := l.store.Read()
	// overdraft rule: inclusive, never clamp
	if before.LessThan(amount) {
		l.logger.Info("debit rejected",
			applog.FieldAmount, models.FormatAmount(amount),
			applog.FieldBalance, models.FormatAmount(before))
		l.term.PrintLine(msgInsufficientFunds)
		return ErrInsufficientFunds
	}

	after := before.Sub(amount)
	l.store.Write(after)

	l.record(models.NewTransaction(models.TransactionDebit, amount, before, after))
	l.term.PrintLine(fmt.Sprintf(msgDebited, models.FormatAmount(after)))
	return nil
}

// PromptCredit asks for an amount and credits it. Only a terminal failure is
// returned; rejected amounts have already been reported to the user.
func (l *Ledger) PromptCredit() error {
	text, err := l.term.PromptLine(promptCredit)
	if err != nil {
		return fmt.Errorf("read credit amount: %w", err)
	}
	return unreported(l.Credit(text))
}

// PromptDebit asks for an amount and debits it. See PromptCredit.
func (l *Ledger) PromptDebit() error {
	text, err := l.term.PromptLine(promptDebit)
	if err != nil {
		return fmt.Errorf("read debit amount: %w", err)
	}
	return unreported(l.Debit(text))
}

func (l *Ledger) parseAmount(text string) (decimal.Decimal, error) {
	amount, err := models.ParseAmount(text)
	if err != nil {
		l.logger.Info("amount rejected", applog.FieldInput, text, applog.FieldError, err)
		l.term.PrintLine(msgInvalidAmount)
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// unreported drops business rejections, which the user has already been told about.
func unreported(err error) error {
	if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInsufficientFunds) {
		return nil
	}
	return err
}

func (l *Ledger) record(tx models.Transaction) {
	l.logger.Debug("transaction applied",
		applog.FieldTransactionID, tx.ID.String(),
		applog.FieldKind, string(tx.Kind),
		applog.FieldAmount, tx.Amount.String(),
		applog.FieldBalanceBefore, tx.BalanceBefore.String(),
		applog.FieldBalance, tx.BalanceAfter.String(),
		applog.FieldCreatedAt, tx.CreatedAt)
}
