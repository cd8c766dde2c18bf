package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

func TestClosePeriodRejectsFurtherPostings(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	if _, _, err := env.postingUC.PostVoucher(ctx, env.simpleVoucher("CLB-2024-401", decimal.NewFromInt(100))); err != nil {
		t.Fatalf("posting failed: %v", err)
	}

	closed, err := env.periodUC.ClosePeriod(ctx, env.period.ID)
	if err != nil {
		t.Fatalf("ClosePeriod failed: %v", err)
	}
	if closed.Status != domain.PeriodStatusClosed || closed.ClosedAt == nil {
		t.Fatalf("expected closed period, got %+v", closed)
	}

	_, _, err = env.postingUC.PostVoucher(ctx, env.simpleVoucher("CLB-2024-402", decimal.NewFromInt(100)))
	if !errors.Is(err, domain.ErrPeriodClosed) {
		t.Fatalf("expected period closed error, got %v", err)
	}
}

func TestClosePeriodTwice(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	if _, err := env.periodUC.ClosePeriod(ctx, env.period.ID); err != nil {
		t.Fatalf("first close failed: %v", err)
	}

	_, err := env.periodUC.ClosePeriod(ctx, env.period.ID)
	if !errors.Is(err, domain.ErrPeriodAlreadyClosed) {
		t.Fatalf("expected already closed error, got %v", err)
	}
}

func TestClosePeriodEmitsOutboxEvent(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	if _, err := env.periodUC.ClosePeriod(ctx, env.period.ID); err != nil {
		t.Fatalf("ClosePeriod failed: %v", err)
	}

	var count int
	err := env.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM outbox_events
		WHERE event_type = $1 AND aggregate_id = $2`,
		domain.EventTypePeriodClosed, env.period.ID).Scan(&count)
	if err != nil {
		t.Fatalf("outbox query failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one period.closed event, got %d", count)
	}
}
