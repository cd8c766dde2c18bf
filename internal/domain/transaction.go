package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Header carries the voucher-level fields of a posting.
type Header struct {
	BranchID             string
	PeriodID             string
	Reference            string
	ValueDate            time.Time
	PrimaryDescription   string
	SecondaryDescription string
}

// LedgerEntry is one persisted, signed movement against one account.
// Positive amounts are debits, negative amounts are credits. Entries are
// created once at posting time and never mutated.
type LedgerEntry struct {
	ID              string
	TransactionID   string
	AccountID       string
	ContraAccountID string
	Amount          decimal.Decimal
	ValueDate       time.Time
	Description     string
	CreatedAt       time.Time
}

// IsDebit reports whether the entry moves value onto the account.
func (e *LedgerEntry) IsDebit() bool {
	return !e.Amount.IsNegative()
}

// Transaction is a canonical, immutable ledger transaction. Once posted it is
// never edited; corrections are made by posting a reversing transaction.
type Transaction struct {
	ID                   string
	BranchID             string
	PeriodID             string
	Reference            string
	ValueDate            time.Time
	TotalValue           decimal.Decimal
	PrimaryDescription   string
	SecondaryDescription string
	ReversesReference    string
	Entries              []LedgerEntry
	CreatedAt            time.Time
}

// SumOfEntries returns the sum of signed amounts across all entries.
// For any transaction produced by BuildTransaction it is exactly zero.
func (t *Transaction) SumOfEntries() decimal.Decimal {
	sum := decimal.Zero
	for i := range t.Entries {
		sum = sum.Add(t.Entries[i].Amount)
	}
	return sum
}

// Reversal returns the mirror image of the transaction under a new reference:
// every entry negated, same accounts and contra linkage, same total value.
func (t *Transaction) Reversal(reference string, valueDate time.Time) *Transaction {
	entries := make([]LedgerEntry, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = LedgerEntry{
			AccountID:       e.AccountID,
			ContraAccountID: e.ContraAccountID,
			Amount:          e.Amount.Neg(),
			ValueDate:       valueDate,
			Description:     e.Description,
		}
	}

	return &Transaction{
		BranchID:             t.BranchID,
		PeriodID:             t.PeriodID,
		Reference:            reference,
		ValueDate:            valueDate,
		TotalValue:           t.TotalValue,
		PrimaryDescription:   "Reversal of " + t.Reference,
		SecondaryDescription: t.PrimaryDescription,
		ReversesReference:    t.Reference,
		Entries:              entries,
	}
}

// PostedReference is the gateway's acknowledgement of a persisted transaction.
type PostedReference struct {
	TransactionID string
	Reference     string
	PostedAt      time.Time
}
