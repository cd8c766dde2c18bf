package usecase

import (
	"context"
	"time"

	"github.com/clubops/ledger/internal/domain"
)

// PeriodUseCase handles the branch/period directory and the period close
// lifecycle.
type PeriodUseCase struct {
	branchRepo BranchRepository
	periodRepo PeriodRepository
	outboxRepo OutboxRepository
	txManager  TransactionManager
	idGen      IDGenerator
}

// NewPeriodUseCase creates a new PeriodUseCase.
func NewPeriodUseCase(
	branchRepo BranchRepository,
	periodRepo PeriodRepository,
	outboxRepo OutboxRepository,
	txManager TransactionManager,
	idGen IDGenerator,
) *PeriodUseCase {
	return &PeriodUseCase{
		branchRepo: branchRepo,
		periodRepo: periodRepo,
		outboxRepo: outboxRepo,
		txManager:  txManager,
		idGen:      idGen,
	}
}

// ListBranches lists all branches.
func (uc *PeriodUseCase) ListBranches(ctx context.Context) ([]*domain.Branch, error) {
	return uc.branchRepo.List(ctx)
}

// ListPeriods lists all posting periods.
func (uc *PeriodUseCase) ListPeriods(ctx context.Context) ([]*domain.PostingPeriod, error) {
	return uc.periodRepo.List(ctx)
}

// GetPeriod retrieves a posting period by ID.
func (uc *PeriodUseCase) GetPeriod(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	return uc.periodRepo.GetByID(ctx, id)
}

// ClosePeriod closes an open posting period. The status change and the
// outbox event commit in one database transaction.
func (uc *PeriodUseCase) ClosePeriod(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	period, err := uc.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !period.IsOpen() {
		return nil, domain.ErrPeriodAlreadyClosed
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.periodRepo.Close(ctx, tx, id, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   period.ID,
		AggregateType: domain.AggregateTypePeriod,
		EventType:     domain.EventTypePeriodClosed,
		Payload: domain.MarshalState(domain.PeriodClosedEvent{
			PeriodID: period.ID,
			Name:     period.Name,
			ClosedAt: now.Format(time.RFC3339),
		}),
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	period.Status = domain.PeriodStatusClosed
	period.ClosedAt = &now

	return period, nil
}
