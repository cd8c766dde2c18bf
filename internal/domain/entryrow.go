package domain

import "github.com/shopspring/decimal"

// EntryRow is one proposed line of a journal voucher. It is an immutable
// value: construct it through NewEntryRow or NewEntryRowFromAmounts.
type EntryRow struct {
	principalAccountID string
	contraAccountID    string
	amount             decimal.Decimal
	isDebit            bool
	description        string
}

// NewEntryRow builds a row from a single positive amount and a debit flag.
func NewEntryRow(principalAccountID, contraAccountID string, amount decimal.Decimal, isDebit bool, description string) (EntryRow, error) {
	if principalAccountID == "" {
		return EntryRow{}, &InvalidAccountError{AccountID: principalAccountID, Reason: "principal account is required"}
	}
	if !amount.IsPositive() {
		return EntryRow{}, ErrInvalidAmount
	}

	return EntryRow{
		principalAccountID: principalAccountID,
		contraAccountID:    contraAccountID,
		amount:             amount,
		isDebit:            isDebit,
		description:        description,
	}, nil
}

// NewEntryRowFromAmounts builds a row from separate debit and credit columns,
// the shape voucher screens submit. Exactly one of the two must be strictly
// positive; a row cannot debit and credit the same account at once.
func NewEntryRowFromAmounts(principalAccountID, contraAccountID string, debitAmount, creditAmount decimal.Decimal, description string) (EntryRow, error) {
	if debitAmount.IsNegative() || creditAmount.IsNegative() {
		return EntryRow{}, ErrInvalidAmount
	}
	if debitAmount.IsPositive() == creditAmount.IsPositive() {
		return EntryRow{}, ErrInvalidAmount
	}

	amount := debitAmount
	isDebit := true
	if creditAmount.IsPositive() {
		amount = creditAmount
		isDebit = false
	}

	return NewEntryRow(principalAccountID, contraAccountID, amount, isDebit, description)
}

// PrincipalAccountID returns the account the row posts against.
func (r EntryRow) PrincipalAccountID() string { return r.principalAccountID }

// ContraAccountID returns the contra account, or empty for an ordinary row.
func (r EntryRow) ContraAccountID() string { return r.contraAccountID }

// Amount returns the row's positive magnitude.
func (r EntryRow) Amount() decimal.Decimal { return r.amount }

// IsDebit reports whether the amount is a debit against the principal account.
func (r EntryRow) IsDebit() bool { return r.isDebit }

// Description returns the free-text line description.
func (r EntryRow) Description() string { return r.description }

// DebitAmount returns the amount when the row is a debit, zero otherwise.
func (r EntryRow) DebitAmount() decimal.Decimal {
	if r.isDebit {
		return r.amount
	}
	return decimal.Zero
}

// CreditAmount returns the amount when the row is a credit, zero otherwise.
func (r EntryRow) CreditAmount() decimal.Decimal {
	if r.isDebit {
		return decimal.Zero
	}
	return r.amount
}

// SignedAmount returns the row's movement on the principal account:
// positive for a debit, negative for a credit.
func (r EntryRow) SignedAmount() decimal.Decimal {
	if r.isDebit {
		return r.amount
	}
	return r.amount.Neg()
}

// IsSelfBalanced reports whether the row names both a principal and a
// distinct contra account. Such a row is an atomic transfer between the two
// accounts: it nets to zero by construction and is excluded from the batch
// debit/credit totals.
func (r EntryRow) IsSelfBalanced() bool {
	return r.contraAccountID != "" && r.contraAccountID != r.principalAccountID
}
