package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits shown for every balance and amount.
const AmountScale = 2

// ErrInvalidAmount is returned when amount text is not a non-negative decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// InitialBalance is the balance a fresh ledger opens with.
var InitialBalance = decimal.New(100000, -AmountScale) // 1000.00

// amountPattern accepts an optionally signed plain decimal: "12", "12.", "12.50", ".5".
// Exponents, separators and trailing text are not numbers here.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParseAmount parses user text into an exact amount. The whole trimmed string
// must be a number and the value must not be negative. Extra fractional digits
// are kept; FormatAmount rounds them only for display.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, text)
	}

	amount, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, s)
	}

	return amount, nil
}

// FormatAmount renders a monetary value with exactly two fractional digits,
// rounding half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountScale)
}
