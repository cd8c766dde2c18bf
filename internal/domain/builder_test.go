package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testHeader() Header {
	return Header{
		BranchID:           "HQ",
		PeriodID:           "2024-01",
		Reference:          "JV-0001",
		ValueDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PrimaryDescription: "January dues",
	}
}

func TestBuildTransaction(t *testing.T) {
	t.Parallel()

	hundred := decimal.NewFromInt(100)

	t.Run("ordinary rows become one signed entry each", func(t *testing.T) {
		rows := []EntryRow{
			mustRow(t, "A", "", hundred, decimal.Zero),
			mustRow(t, "B", "", decimal.Zero, hundred),
		}
		set, err := ValidateBatch(rows, testAccounts("A", "B"))
		if err != nil {
			t.Fatalf("validate: %v", err)
		}

		txn := BuildTransaction(set, testHeader())

		if len(txn.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(txn.Entries))
		}
		if !txn.Entries[0].Amount.Equal(hundred) || txn.Entries[0].AccountID != "A" {
			t.Fatalf("expected {A, +100}, got {%s, %s}", txn.Entries[0].AccountID, txn.Entries[0].Amount)
		}
		if !txn.Entries[1].Amount.Equal(hundred.Neg()) || txn.Entries[1].AccountID != "B" {
			t.Fatalf("expected {B, -100}, got {%s, %s}", txn.Entries[1].AccountID, txn.Entries[1].Amount)
		}
		if !txn.TotalValue.Equal(hundred) {
			t.Fatalf("expected total value 100, got %s", txn.TotalValue)
		}
		if txn.Reference != "JV-0001" || txn.BranchID != "HQ" || txn.PeriodID != "2024-01" {
			t.Fatalf("header fields not carried: %+v", txn)
		}
	})

	t.Run("self-balanced row becomes a cross-referenced pair", func(t *testing.T) {
		rows := []EntryRow{
			mustRow(t, "A", "B", decimal.NewFromInt(50), decimal.Zero),
		}
		set, err := ValidateBatch(rows, testAccounts("A", "B"))
		if err != nil {
			t.Fatalf("validate: %v", err)
		}

		txn := BuildTransaction(set, testHeader())

		if len(txn.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(txn.Entries))
		}

		principal, contra := txn.Entries[0], txn.Entries[1]
		if principal.AccountID != "A" || !principal.Amount.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected {A, +50}, got {%s, %s}", principal.AccountID, principal.Amount)
		}
		if contra.AccountID != "B" || !contra.Amount.Equal(decimal.NewFromInt(-50)) {
			t.Fatalf("expected {B, -50}, got {%s, %s}", contra.AccountID, contra.Amount)
		}
		if principal.ContraAccountID != "B" || contra.ContraAccountID != "A" {
			t.Fatal("expected entries to cross-reference each other")
		}

		// Transfers stay out of the displayed total.
		if !txn.TotalValue.IsZero() {
			t.Fatalf("expected total value 0, got %s", txn.TotalValue)
		}
	})

	t.Run("entries always sum to zero", func(t *testing.T) {
		rows := []EntryRow{
			mustRow(t, "A", "", decimal.RequireFromString("10.25"), decimal.Zero),
			mustRow(t, "B", "", decimal.RequireFromString("89.75"), decimal.Zero),
			mustRow(t, "C", "", decimal.Zero, hundred),
			mustRow(t, "A", "C", decimal.NewFromInt(7), decimal.Zero),
		}
		set, err := ValidateBatch(rows, testAccounts("A", "B", "C"))
		if err != nil {
			t.Fatalf("validate: %v", err)
		}

		txn := BuildTransaction(set, testHeader())
		if !txn.SumOfEntries().IsZero() {
			t.Fatalf("expected zero sum, got %s", txn.SumOfEntries())
		}

		// Debit side only: 10.25 + 89.75, never both sides of the batch.
		if !txn.TotalValue.Equal(hundred) {
			t.Fatalf("expected total value 100, got %s", txn.TotalValue)
		}
	})

	t.Run("build is a pure function of the validated rows", func(t *testing.T) {
		rows := []EntryRow{
			mustRow(t, "A", "", hundred, decimal.Zero),
			mustRow(t, "B", "", decimal.Zero, hundred),
		}
		set, err := ValidateBatch(rows, testAccounts("A", "B"))
		if err != nil {
			t.Fatalf("validate: %v", err)
		}

		first := BuildTransaction(set, testHeader())
		second := BuildTransaction(set, testHeader())

		if len(first.Entries) != len(second.Entries) {
			t.Fatalf("entry counts differ: %d vs %d", len(first.Entries), len(second.Entries))
		}
		for i := range first.Entries {
			a, b := first.Entries[i], second.Entries[i]
			if a.AccountID != b.AccountID || !a.Amount.Equal(b.Amount) || a.ContraAccountID != b.ContraAccountID {
				t.Fatalf("entry %d differs: %+v vs %+v", i, a, b)
			}
		}
		if !first.TotalValue.Equal(second.TotalValue) {
			t.Fatal("total values differ")
		}
	})
}

func TestTransactionReversal(t *testing.T) {
	t.Parallel()

	rows := []EntryRow{
		mustRow(t, "A", "", decimal.NewFromInt(100), decimal.Zero),
		mustRow(t, "B", "", decimal.Zero, decimal.NewFromInt(100)),
	}
	set, err := ValidateBatch(rows, testAccounts("A", "B"))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	original := BuildTransaction(set, testHeader())
	valueDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	reversal := original.Reversal("JV-0001-R", valueDate)

	if reversal.Reference != "JV-0001-R" {
		t.Fatalf("expected new reference, got %q", reversal.Reference)
	}
	if reversal.ReversesReference != "JV-0001" {
		t.Fatalf("expected back-reference JV-0001, got %q", reversal.ReversesReference)
	}
	if !reversal.SumOfEntries().IsZero() {
		t.Fatalf("reversal must sum to zero, got %s", reversal.SumOfEntries())
	}
	for i := range original.Entries {
		if !reversal.Entries[i].Amount.Equal(original.Entries[i].Amount.Neg()) {
			t.Fatalf("entry %d not negated", i)
		}
	}
	if !reversal.TotalValue.Equal(original.TotalValue) {
		t.Fatal("reversal keeps the original total value")
	}
}
