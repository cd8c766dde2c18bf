package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

// AccountRepository is the chart-of-accounts directory. Accounts are created
// by administration and read-only to the posting core.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// BranchRepository supplies valid branch identifiers.
type BranchRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Branch, error)
	List(ctx context.Context) ([]*domain.Branch, error)
}

// PeriodRepository supplies posting periods and drives the open/close
// lifecycle.
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PostingPeriod, error)
	List(ctx context.Context) ([]*domain.PostingPeriod, error)
	Close(ctx context.Context, tx Transaction, id string, closedAt time.Time) error
}

// TrialBalanceRow is one account's aggregate movement within a period.
type TrialBalanceRow struct {
	AccountID   string
	AccountCode int64
	AccountName string
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

// TransactionRepository reads the persisted ledger stream. Writing happens
// only through the PostingGateway.
type TransactionRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.LedgerEntry, error)
	ListEntriesByAccountPeriod(ctx context.Context, accountID, periodID string) ([]domain.LedgerEntry, error)
	OpeningBalance(ctx context.Context, accountID string, before time.Time) (decimal.Decimal, error)
	TrialBalance(ctx context.Context, periodID string) ([]TrialBalanceRow, error)
	CheckConsistency(ctx context.Context) (totalDebit, totalCredit decimal.Decimal, err error)
}

// PostingGateway is the single capability the posting core needs from its
// environment: atomically persist a built transaction. Submit must treat the
// transaction's reference as a natural key so a retry with the identical
// transaction value is idempotent.
type PostingGateway interface {
	Submit(ctx context.Context, txn *domain.Transaction) (domain.PostedReference, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
