package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Batch validation errors
	ErrEmptyBatch    = errors.New("posting batch is empty")
	ErrZeroTotal     = errors.New("posting batch has nothing to post")
	ErrUnbalanced    = errors.New("posting batch does not balance")
	ErrInvalidAmount = errors.New("amount must be positive")

	// Directory errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccount      = errors.New("invalid account")
	ErrBranchUnknown       = errors.New("branch unknown")
	ErrPeriodNotFound      = errors.New("posting period not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Posting gateway errors
	ErrPeriodClosed        = errors.New("posting period is closed")
	ErrPeriodAlreadyClosed = errors.New("posting period is already closed")
	ErrDuplicateReference  = errors.New("transaction reference already posted")
	ErrGatewayUnavailable  = errors.New("posting gateway unavailable")
)

// UnbalancedError reports a debit/credit mismatch across the ordinary rows of
// a batch. Shortfall is |totalDebit - totalCredit|, the figure shown to users.
type UnbalancedError struct {
	Shortfall decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("posting batch does not balance: shortfall %s", e.Shortfall)
}

func (e *UnbalancedError) Unwrap() error {
	return ErrUnbalanced
}

// InvalidAccountError names the account that failed a batch account check.
type InvalidAccountError struct {
	AccountID string
	Reason    string
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("invalid account %s: %s", e.AccountID, e.Reason)
}

func (e *InvalidAccountError) Unwrap() error {
	return ErrInvalidAccount
}
