package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/account-ledger/internal/models"
)

func TestDefaultStoreOpensAtInitialBalance(t *testing.T) {
	s := NewDefaultLedgerStore()
	if !s.Read().Equal(models.InitialBalance) {
		t.Fatalf("Read() = %s, want %s", s.Read(), models.InitialBalance)
	}
}

func TestReadIsIdempotent(t *testing.T) {
	s := NewMemoryLedgerStore(decimal.RequireFromString("42.10"))
	first, second := s.Read(), s.Read()
	if !first.Equal(second) {
		t.Fatalf("consecutive reads differ: %s then %s", first, second)
	}
}

func TestWriteReplacesBalance(t *testing.T) {
	s := NewDefaultLedgerStore()

	for _, v := range []string{"1500.50", "0", "0.01", "999999.99"} {
		want := decimal.RequireFromString(v)
		s.Write(want)
		if got := s.Read(); !got.Equal(want) {
			t.Fatalf("after Write(%s) Read() = %s", want, got)
		}
	}
}

// The store is a plain value holder; it accepts whatever the caller hands it.
func TestWriteDoesNotValidate(t *testing.T) {
	s := NewDefaultLedgerStore()
	neg := decimal.RequireFromString("-5")
	s.Write(neg)
	if !s.Read().Equal(neg) {
		t.Fatalf("Read() = %s, want %s", s.Read(), neg)
	}
}
