package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewEntryRow(t *testing.T) {
	t.Parallel()

	t.Run("valid debit row", func(t *testing.T) {
		row, err := NewEntryRow("acc-1", "", decimal.NewFromInt(100), true, "monthly dues")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !row.IsDebit() {
			t.Fatal("expected debit row")
		}
		if !row.SignedAmount().Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected signed amount 100, got %s", row.SignedAmount())
		}
		if !row.CreditAmount().IsZero() {
			t.Fatalf("expected zero credit amount, got %s", row.CreditAmount())
		}
	})

	t.Run("valid credit row has negative signed amount", func(t *testing.T) {
		row, err := NewEntryRow("acc-1", "", decimal.NewFromInt(40), false, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !row.SignedAmount().Equal(decimal.NewFromInt(-40)) {
			t.Fatalf("expected signed amount -40, got %s", row.SignedAmount())
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := NewEntryRow("acc-1", "", decimal.Zero, true, "")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewEntryRow("acc-1", "", decimal.NewFromInt(-5), true, "")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("missing principal rejected", func(t *testing.T) {
		_, err := NewEntryRow("", "", decimal.NewFromInt(5), true, "")
		if !errors.Is(err, ErrInvalidAccount) {
			t.Fatalf("expected ErrInvalidAccount, got %v", err)
		}
	})
}

func TestNewEntryRowFromAmounts(t *testing.T) {
	t.Parallel()

	t.Run("debit column", func(t *testing.T) {
		row, err := NewEntryRowFromAmounts("acc-1", "", decimal.NewFromInt(25), decimal.Zero, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !row.IsDebit() || !row.Amount().Equal(decimal.NewFromInt(25)) {
			t.Fatalf("expected debit of 25, got debit=%v amount=%s", row.IsDebit(), row.Amount())
		}
	})

	t.Run("credit column", func(t *testing.T) {
		row, err := NewEntryRowFromAmounts("acc-1", "", decimal.Zero, decimal.NewFromInt(25), "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if row.IsDebit() {
			t.Fatal("expected credit row")
		}
	})

	t.Run("both columns set rejected", func(t *testing.T) {
		_, err := NewEntryRowFromAmounts("acc-1", "", decimal.NewFromInt(10), decimal.NewFromInt(10), "")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("both columns zero rejected", func(t *testing.T) {
		_, err := NewEntryRowFromAmounts("acc-1", "", decimal.Zero, decimal.Zero, "")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestEntryRowIsSelfBalanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal string
		contra    string
		want      bool
	}{
		{"no contra", "acc-1", "", false},
		{"distinct contra", "acc-1", "acc-2", true},
		{"contra equals principal", "acc-1", "acc-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := NewEntryRow(tt.principal, tt.contra, decimal.NewFromInt(1), true, "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := row.IsSelfBalanced(); got != tt.want {
				t.Fatalf("IsSelfBalanced() = %v, want %v", got, tt.want)
			}
		})
	}
}
