package domain

import "github.com/shopspring/decimal"

// balanceEpsilon is the currency-minor-unit tolerance for the batch balance
// check: a batch balances when |totalDebit - totalCredit| < 0.01.
var balanceEpsilon = decimal.RequireFromString("0.01")

// BatchTotals are the aggregate debit and credit sums over the ordinary
// (non-self-balanced) rows of a batch. Voucher screens derive their shortage
// and apportioned figures from the same partition, so self-balanced rows must
// stay excluded here.
type BatchTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Shortfall returns |Debit - Credit|.
func (t BatchTotals) Shortfall() decimal.Decimal {
	return t.Debit.Sub(t.Credit).Abs()
}

// Balanced reports whether the shortfall is below the balance epsilon.
func (t BatchTotals) Balanced() bool {
	return t.Shortfall().LessThan(balanceEpsilon)
}

// Totals computes the aggregate debit/credit sums of a batch. Self-balanced
// rows carry their debit and credit as a matched pair that cancels exactly,
// so skipping them never changes the shortfall; the exclusion is kept because
// the displayed totals are defined over ordinary rows only.
func Totals(rows []EntryRow) BatchTotals {
	totals := BatchTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, row := range rows {
		if row.IsSelfBalanced() {
			continue
		}
		totals.Debit = totals.Debit.Add(row.DebitAmount())
		totals.Credit = totals.Credit.Add(row.CreditAmount())
	}
	return totals
}

// ValidatedSet is a batch of rows that passed ValidateBatch. Its rows are not
// reachable from outside the package; only BuildTransaction consumes it.
type ValidatedSet struct {
	rows []EntryRow
}

// Len returns the number of rows in the set.
func (s ValidatedSet) Len() int { return len(s.rows) }

// ValidateBatch enforces the double-entry invariant over a set of entry rows.
// accounts is the caller-supplied slice of the chart of accounts covering
// every account the rows reference; the validator itself performs no I/O and
// never mutates rows.
//
// Checks, in order:
//   - the batch is non-empty
//   - every row carries a positive amount
//   - every referenced account exists; principal accounts are unlocked
//   - the batch would post something at all
//   - ordinary rows balance to within the epsilon
func ValidateBatch(rows []EntryRow, accounts map[string]*Account) (ValidatedSet, error) {
	if len(rows) == 0 {
		return ValidatedSet{}, ErrEmptyBatch
	}

	selfBalanced := 0
	for _, row := range rows {
		if !row.Amount().IsPositive() {
			return ValidatedSet{}, ErrInvalidAmount
		}

		principal, ok := accounts[row.PrincipalAccountID()]
		if !ok {
			return ValidatedSet{}, &InvalidAccountError{AccountID: row.PrincipalAccountID(), Reason: "unknown account"}
		}
		if err := principal.ValidatePrincipal(); err != nil {
			return ValidatedSet{}, err
		}

		if contra := row.ContraAccountID(); contra != "" {
			if _, ok := accounts[contra]; !ok {
				return ValidatedSet{}, &InvalidAccountError{AccountID: contra, Reason: "unknown contra account"}
			}
		}

		if row.IsSelfBalanced() {
			selfBalanced++
		}
	}

	totals := Totals(rows)
	if totals.Debit.IsZero() && totals.Credit.IsZero() {
		if selfBalanced == 0 {
			return ValidatedSet{}, ErrZeroTotal
		}
	} else if !totals.Balanced() {
		return ValidatedSet{}, &UnbalancedError{Shortfall: totals.Shortfall()}
	}

	return ValidatedSet{rows: rows}, nil
}
