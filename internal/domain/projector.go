package domain

import (
	"iter"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the derived balance state of one account as of one
// ledger entry. Snapshots are recomputed on demand and never persisted by the
// posting core.
type BalanceSnapshot struct {
	AccountID         string
	AsOf              time.Time
	RunningBalance    decimal.Decimal
	PeriodDebitTotal  decimal.Decimal
	PeriodCreditTotal decimal.Decimal
}

// SortEntriesForProjection orders entries by value date, keeping the original
// relative order of entries with an equal value date. The stable tie-break
// matches the order BuildTransaction emits the two sides of a self-balanced
// row, so a transfer's sides never invert within one projection pass.
func SortEntriesForProjection(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ValueDate.Before(entries[j].ValueDate)
	})
}

// ProjectBalances computes running and period-to-date balances for one
// account over entries already filtered to that account and ordered by
// (valueDate, insertion order). The sequence is lazy and restartable:
// re-ranging it recomputes from the opening balance. An empty input yields an
// empty sequence.
func ProjectBalances(accountID string, entries []LedgerEntry, opening decimal.Decimal) iter.Seq[BalanceSnapshot] {
	return func(yield func(BalanceSnapshot) bool) {
		running := opening
		debits := decimal.Zero
		credits := decimal.Zero

		for i := range entries {
			e := &entries[i]
			running = running.Add(e.Amount)
			if e.Amount.IsNegative() {
				credits = credits.Add(e.Amount.Neg())
			} else {
				debits = debits.Add(e.Amount)
			}

			snapshot := BalanceSnapshot{
				AccountID:         accountID,
				AsOf:              e.ValueDate,
				RunningBalance:    running,
				PeriodDebitTotal:  debits,
				PeriodCreditTotal: credits,
			}
			if !yield(snapshot) {
				return
			}
		}
	}
}

// CollectBalances materializes a full projection pass into a slice.
func CollectBalances(accountID string, entries []LedgerEntry, opening decimal.Decimal) []BalanceSnapshot {
	snapshots := make([]BalanceSnapshot, 0, len(entries))
	for s := range ProjectBalances(accountID, entries, opening) {
		snapshots = append(snapshots, s)
	}
	return snapshots
}
