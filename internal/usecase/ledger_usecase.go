package usecase

import (
	"context"
	"errors"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	txnRepo TransactionRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(txnRepo TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{
		txnRepo: txnRepo,
	}
}

// CheckConsistency verifies that the persisted ledger stream still honors the
// double-entry invariant: total debits equal total credits across every
// posted entry.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalDebit, totalCredit, err := uc.txnRepo.CheckConsistency(ctx)
	if err != nil {
		return false, err
	}

	if !totalDebit.Equal(totalCredit) {
		return false, ErrInconsistentLedger
	}

	return true, nil
}

// TrialBalance aggregates per-account debit/credit totals for one posting
// period. A balanced period's grand totals match.
func (uc *LedgerUseCase) TrialBalance(ctx context.Context, periodID string) ([]TrialBalanceRow, error) {
	return uc.txnRepo.TrialBalance(ctx, periodID)
}
