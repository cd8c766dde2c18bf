package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectBalances(t *testing.T) {
	t.Parallel()

	t.Run("running balance accumulates in order", func(t *testing.T) {
		entries := []LedgerEntry{
			{AccountID: "A", Amount: decimal.NewFromInt(100), ValueDate: day(1)},
			{AccountID: "A", Amount: decimal.NewFromInt(-40), ValueDate: day(2)},
			{AccountID: "A", Amount: decimal.NewFromInt(-60), ValueDate: day(3)},
		}

		snapshots := CollectBalances("A", entries, decimal.Zero)

		want := []int64{100, 60, 0}
		if len(snapshots) != len(want) {
			t.Fatalf("expected %d snapshots, got %d", len(want), len(snapshots))
		}
		for i, w := range want {
			if !snapshots[i].RunningBalance.Equal(decimal.NewFromInt(w)) {
				t.Fatalf("snapshot %d: expected running balance %d, got %s", i, w, snapshots[i].RunningBalance)
			}
		}

		last := snapshots[2]
		if !last.PeriodDebitTotal.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected period debit total 100, got %s", last.PeriodDebitTotal)
		}
		if !last.PeriodCreditTotal.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected period credit total 100, got %s", last.PeriodCreditTotal)
		}
		if last.AccountID != "A" || !last.AsOf.Equal(day(3)) {
			t.Fatalf("unexpected snapshot identity: %+v", last)
		}
	})

	t.Run("opening balance seeds the accumulator", func(t *testing.T) {
		entries := []LedgerEntry{
			{AccountID: "A", Amount: decimal.NewFromInt(-30), ValueDate: day(1)},
		}

		snapshots := CollectBalances("A", entries, decimal.NewFromInt(50))

		if !snapshots[0].RunningBalance.Equal(decimal.NewFromInt(20)) {
			t.Fatalf("expected running balance 20, got %s", snapshots[0].RunningBalance)
		}
		// Opening balance does not count toward period totals.
		if !snapshots[0].PeriodDebitTotal.IsZero() {
			t.Fatalf("expected zero period debits, got %s", snapshots[0].PeriodDebitTotal)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		snapshots := CollectBalances("A", nil, decimal.Zero)
		if len(snapshots) != 0 {
			t.Fatalf("expected no snapshots, got %d", len(snapshots))
		}
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		entries := []LedgerEntry{
			{AccountID: "A", Amount: decimal.NewFromInt(10), ValueDate: day(1)},
			{AccountID: "A", Amount: decimal.NewFromInt(10), ValueDate: day(2)},
		}

		seq := ProjectBalances("A", entries, decimal.Zero)

		// First pass stops early.
		for s := range seq {
			if !s.RunningBalance.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("expected first snapshot balance 10, got %s", s.RunningBalance)
			}
			break
		}

		// Second pass restarts from the opening balance.
		var balances []decimal.Decimal
		for s := range seq {
			balances = append(balances, s.RunningBalance)
		}
		if len(balances) != 2 || !balances[0].Equal(decimal.NewFromInt(10)) || !balances[1].Equal(decimal.NewFromInt(20)) {
			t.Fatalf("expected restarted pass [10 20], got %v", balances)
		}
	})
}

func TestSortEntriesForProjection(t *testing.T) {
	t.Parallel()

	// Two sides of a transfer share a value date; their relative order
	// must survive the sort.
	entries := []LedgerEntry{
		{ID: "e3", Amount: decimal.NewFromInt(5), ValueDate: day(2)},
		{ID: "e1", Amount: decimal.NewFromInt(50), ValueDate: day(1)},
		{ID: "e2", Amount: decimal.NewFromInt(-50), ValueDate: day(1)},
	}

	SortEntriesForProjection(entries)

	got := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	want := []string{"e1", "e2", "e3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
