package domain

import "time"

// AccountType classifies an account in the chart of accounts. The enumeration
// is closed: postings against any other value are rejected.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the closed set of account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account is an immutable descriptor from the chart of accounts. The posting
// core reads accounts, it never creates, mutates or deletes them.
type Account struct {
	ID                      string
	Code                    int64
	Name                    string
	Type                    AccountType
	CostCenterID            string
	IsControlAccount        bool
	IsReconciliationAccount bool
	PostAutomaticallyOnly   bool
	IsLocked                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ValidatePrincipal checks whether the account may appear as the principal
// account of a new entry row. A locked account may not.
func (a *Account) ValidatePrincipal() error {
	if a.IsLocked {
		return &InvalidAccountError{AccountID: a.ID, Reason: "account is locked"}
	}
	return nil
}
