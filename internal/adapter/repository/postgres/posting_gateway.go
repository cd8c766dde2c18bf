package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// PostgreSQL error codes the gateway maps to domain errors.
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// PostingGateway implements usecase.PostingGateway. Submit persists the
// transaction header, its entries, and the corresponding outbox event in one
// database transaction: either the whole posting becomes visible or none of
// it does.
type PostingGateway struct {
	pool    *pgxpool.Pool
	idGen   usecase.IDGenerator
	retrier *Retrier
}

// NewPostingGateway creates a new PostingGateway.
func NewPostingGateway(pool *pgxpool.Pool, idGen usecase.IDGenerator) *PostingGateway {
	return &PostingGateway{
		pool:    pool,
		idGen:   idGen,
		retrier: NewRetrier(),
	}
}

// Submit atomically persists a built transaction. The reference acts as the
// natural key: submitting the same reference twice yields
// domain.ErrDuplicateReference, which makes caller-side retries of a
// connection failure safe.
func (g *PostingGateway) Submit(ctx context.Context, txn *domain.Transaction) (domain.PostedReference, error) {
	var ref domain.PostedReference

	err := g.retrier.Retry(ctx, func() error {
		var err error
		ref, err = g.submitOnce(ctx, txn)
		return err
	})
	if err != nil {
		return domain.PostedReference{}, mapPgError(err)
	}

	return ref, nil
}

func (g *PostingGateway) submitOnce(ctx context.Context, txn *domain.Transaction) (domain.PostedReference, error) {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return domain.PostedReference{}, errors.Join(domain.ErrGatewayUnavailable, err)
	}
	defer tx.Rollback(ctx)

	// Re-check the period under the transaction; the usecase check raced
	// against a concurrent close.
	var status string
	err = tx.QueryRow(ctx, `
		SELECT status FROM posting_periods WHERE id = $1`, txn.PeriodID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PostedReference{}, domain.ErrPeriodNotFound
		}
		return domain.PostedReference{}, err
	}
	if domain.PeriodStatus(status) != domain.PeriodStatusOpen {
		return domain.PostedReference{}, domain.ErrPeriodClosed
	}

	txnID := g.idGen.Generate()
	postedAt := time.Now().UTC()

	_, err = tx.Exec(ctx, `
		INSERT INTO gl_transactions (
			id, branch_id, period_id, reference, value_date, total_value,
			primary_description, secondary_description, reverses_reference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		txnID,
		txn.BranchID,
		txn.PeriodID,
		txn.Reference,
		dateToPgDate(txn.ValueDate),
		decimalToNumeric(txn.TotalValue),
		txn.PrimaryDescription,
		textOrNull(txn.SecondaryDescription),
		textOrNull(txn.ReversesReference),
		timeToPgTimestamptz(postedAt),
	)
	if err != nil {
		return domain.PostedReference{}, err
	}

	for i, entry := range txn.Entries {
		_, err = tx.Exec(ctx, `
			INSERT INTO gl_entries (
				id, transaction_id, account_id, contra_account_id, amount,
				value_date, description, position, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			g.idGen.Generate(),
			txnID,
			entry.AccountID,
			textOrNull(entry.ContraAccountID),
			decimalToNumeric(entry.Amount),
			dateToPgDate(entry.ValueDate),
			entry.Description,
			i,
			timeToPgTimestamptz(postedAt),
		)
		if err != nil {
			return domain.PostedReference{}, err
		}
	}

	if err := createOutboxEvent(ctx, tx, g.buildEvent(txn, txnID, postedAt)); err != nil {
		return domain.PostedReference{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.PostedReference{}, errors.Join(domain.ErrGatewayUnavailable, err)
	}

	return domain.PostedReference{
		TransactionID: txnID,
		Reference:     txn.Reference,
		PostedAt:      postedAt,
	}, nil
}

func (g *PostingGateway) buildEvent(txn *domain.Transaction, txnID string, postedAt time.Time) *domain.OutboxEvent {
	eventType := domain.EventTypePostingCreated
	var payload any = domain.PostingCreatedEvent{
		TransactionID: txnID,
		Reference:     txn.Reference,
		BranchID:      txn.BranchID,
		PeriodID:      txn.PeriodID,
		TotalValue:    txn.TotalValue.String(),
		EntryCount:    len(txn.Entries),
		ValueDate:     txn.ValueDate.Format("2006-01-02"),
	}

	if txn.ReversesReference != "" {
		eventType = domain.EventTypePostingReversed
		payload = domain.PostingReversedEvent{
			TransactionID:     txnID,
			Reference:         txn.Reference,
			ReversesReference: txn.ReversesReference,
			TotalValue:        txn.TotalValue.String(),
		}
	}

	return &domain.OutboxEvent{
		ID:            g.idGen.Generate(),
		AggregateID:   txnID,
		AggregateType: domain.AggregateTypePosting,
		EventType:     eventType,
		Payload:       domain.MarshalState(payload),
		CreatedAt:     postedAt,
	}
}

// mapPgError translates PostgreSQL failures into the domain errors the
// posting core understands.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "reference") {
				return domain.ErrDuplicateReference
			}
		case pgErrForeignKeyViolation:
			switch {
			case strings.Contains(pgErr.ConstraintName, "branch"):
				return domain.ErrBranchUnknown
			case strings.Contains(pgErr.ConstraintName, "period"):
				return domain.ErrPeriodNotFound
			case strings.Contains(pgErr.ConstraintName, "account"):
				return &domain.InvalidAccountError{AccountID: pgErr.Detail, Reason: "account does not exist"}
			}
		}

		// Connection exceptions, resource exhaustion and shutdown states are
		// transient from the caller's point of view.
		switch pgErr.Code[:2] {
		case "08", "53", "57":
			return errors.Join(domain.ErrGatewayUnavailable, err)
		}

		return err
	}

	return err
}

func dateToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
