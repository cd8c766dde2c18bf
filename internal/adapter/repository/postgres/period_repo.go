package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// BranchRepository implements usecase.BranchRepository.
type BranchRepository struct {
	pool *pgxpool.Pool
}

// NewBranchRepository creates a new BranchRepository.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{pool: pool}
}

// GetByID retrieves a branch by ID.
func (r *BranchRepository) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	var (
		branch    domain.Branch
		createdAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at FROM branches WHERE id = $1`, id).
		Scan(&branch.ID, &branch.Name, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBranchUnknown
		}

		return nil, err
	}

	branch.CreatedAt = createdAt.Time

	return &branch, nil
}

// List lists all branches.
func (r *BranchRepository) List(ctx context.Context) ([]*domain.Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at FROM branches ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*domain.Branch
	for rows.Next() {
		var (
			branch    domain.Branch
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&branch.ID, &branch.Name, &createdAt); err != nil {
			return nil, err
		}
		branch.CreatedAt = createdAt.Time
		branches = append(branches, &branch)
	}

	return branches, rows.Err()
}

// PeriodRepository implements usecase.PeriodRepository.
type PeriodRepository struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{pool: pool}
}

const periodColumns = `id, name, starts_on, ends_on, status, closed_at, created_at`

// GetByID retrieves a posting period by ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+periodColumns+` FROM posting_periods WHERE id = $1`, id)

	period, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}

		return nil, err
	}

	return period, nil
}

// List lists posting periods, newest first.
func (r *PeriodRepository) List(ctx context.Context) ([]*domain.PostingPeriod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+periodColumns+` FROM posting_periods ORDER BY starts_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*domain.PostingPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// Close marks a period closed within a transaction. The WHERE guard keeps a
// concurrent close from flipping an already-closed period.
func (r *PeriodRepository) Close(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE posting_periods
		SET status = $1, closed_at = $2
		WHERE id = $3 AND status = $4`,
		string(domain.PeriodStatusClosed),
		timeToPgTimestamptz(closedAt),
		id,
		string(domain.PeriodStatusOpen),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPeriodAlreadyClosed
	}

	return nil
}

func scanPeriod(row pgx.Row) (*domain.PostingPeriod, error) {
	var (
		period    domain.PostingPeriod
		status    string
		startsOn  pgtype.Date
		endsOn    pgtype.Date
		closedAt  pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&period.ID,
		&period.Name,
		&startsOn,
		&endsOn,
		&status,
		&closedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	period.Status = domain.PeriodStatus(status)
	period.StartsOn = startsOn.Time
	period.EndsOn = endsOn.Time
	period.CreatedAt = createdAt.Time
	if closedAt.Valid {
		t := closedAt.Time
		period.ClosedAt = &t
	}

	return &period, nil
}
