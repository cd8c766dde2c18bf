package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/clubops/ledger/internal/domain"
)

// AccountUseCase handles chart-of-accounts administration. Postings only ever
// read accounts; creation lives here so the directory can be seeded and
// browsed by back-office screens.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Code                    int64
	Name                    string
	Type                    domain.AccountType
	CostCenterID            string
	IsControlAccount        bool
	IsReconciliationAccount bool
	PostAutomaticallyOnly   bool
	IsLocked                bool
}

// CreateAccount creates a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountCode(input.Code); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAccountType, input.Type)
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:                      uc.idGen.Generate(),
		Code:                    input.Code,
		Name:                    input.Name,
		Type:                    input.Type,
		CostCenterID:            input.CostCenterID,
		IsControlAccount:        input.IsControlAccount,
		IsReconciliationAccount: input.IsReconciliationAccount,
		PostAutomaticallyOnly:   input.PostAutomaticallyOnly,
		IsLocked:                input.IsLocked,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}
