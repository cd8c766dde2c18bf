package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

// BalanceUseCase reconstructs account balances from the persisted entry
// stream using the balance projector.
type BalanceUseCase struct {
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	cache       Cache
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(accountRepo AccountRepository, txnRepo TransactionRepository, cache Cache) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		cache:       cache,
	}
}

// BalanceHistoryInput represents input for a balance history projection.
type BalanceHistoryInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetBalanceHistory projects one snapshot per ledger entry for an account, in
// (valueDate, insertion) order. The window's opening balance is the signed
// sum of everything posted before it.
func (uc *BalanceUseCase) GetBalanceHistory(ctx context.Context, input BalanceHistoryInput) ([]domain.BalanceSnapshot, error) {
	limit, offset, _ := domain.ValidatePagination(input.Limit, input.Offset)

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	entries, err := uc.txnRepo.ListEntriesByAccount(ctx, input.AccountID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.BalanceSnapshot{}, nil
	}

	opening := decimal.Zero
	if offset > 0 {
		opening, err = uc.txnRepo.OpeningBalance(ctx, input.AccountID, entries[0].CreatedAt)
		if err != nil {
			return nil, err
		}
	}

	domain.SortEntriesForProjection(entries)

	return domain.CollectBalances(input.AccountID, entries, opening), nil
}

// GetLatestBalance returns the most recent snapshot for an account, serving
// a short-lived cached copy when one exists.
func (uc *BalanceUseCase) GetLatestBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
	cacheKey := "balance:" + accountID

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			var snapshot domain.BalanceSnapshot
			if err := json.Unmarshal(data, &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	entries, err := uc.txnRepo.ListEntriesByAccount(ctx, accountID, 0, 0)
	if err != nil {
		return nil, err
	}

	domain.SortEntriesForProjection(entries)

	snapshot := domain.BalanceSnapshot{
		AccountID:         accountID,
		AsOf:              time.Now().UTC(),
		RunningBalance:    decimal.Zero,
		PeriodDebitTotal:  decimal.Zero,
		PeriodCreditTotal: decimal.Zero,
	}
	for s := range domain.ProjectBalances(accountID, entries, decimal.Zero) {
		snapshot = s
	}

	if uc.cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, data, BalanceCacheTTL)
		}
	}

	return &snapshot, nil
}

// PeriodBalanceInput represents input for period-to-date totals.
type PeriodBalanceInput struct {
	AccountID string
	PeriodID  string
}

// GetPeriodBalance projects period-to-date debit/credit totals for one
// account within one posting period.
func (uc *BalanceUseCase) GetPeriodBalance(ctx context.Context, input PeriodBalanceInput) (*domain.BalanceSnapshot, error) {
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	entries, err := uc.txnRepo.ListEntriesByAccountPeriod(ctx, input.AccountID, input.PeriodID)
	if err != nil {
		return nil, err
	}

	domain.SortEntriesForProjection(entries)

	snapshot := domain.BalanceSnapshot{
		AccountID:         input.AccountID,
		AsOf:              time.Now().UTC(),
		RunningBalance:    decimal.Zero,
		PeriodDebitTotal:  decimal.Zero,
		PeriodCreditTotal: decimal.Zero,
	}
	for s := range domain.ProjectBalances(input.AccountID, entries, decimal.Zero) {
		snapshot = s
	}

	return &snapshot, nil
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListEntries lists persisted ledger entries for an account.
func (uc *BalanceUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.LedgerEntry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.txnRepo.ListEntriesByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
