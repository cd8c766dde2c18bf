package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

func TestConcurrentSameReferencePostsOnce(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := env.postingUC.PostVoucher(ctx, env.simpleVoucher("CLB-2024-050", decimal.NewFromInt(60)))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, duplicates int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrDuplicateReference):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Fatalf("successful posts = %d, want exactly 1", succeeded)
	}
	if duplicates != workers-1 {
		t.Fatalf("duplicate errors = %d, want %d", duplicates, workers-1)
	}

	var count int
	if err := env.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM gl_transactions WHERE reference = $1`, "CLB-2024-050").Scan(&count); err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if count != 1 {
		t.Fatalf("persisted transactions = %d, want 1", count)
	}
}

func TestConcurrentDistinctReferences(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	refs := []string{"CLB-2024-060", "CLB-2024-061", "CLB-2024-062", "CLB-2024-063"}
	var wg sync.WaitGroup
	errs := make(chan error, len(refs))

	for _, ref := range refs {
		wg.Add(1)
		go func(reference string) {
			defer wg.Done()
			_, _, err := env.postingUC.PostVoucher(ctx, env.simpleVoucher(reference, decimal.NewFromInt(25)))
			errs <- err
		}(ref)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("PostVoucher: %v", err)
		}
	}

	snapshot, err := env.balanceUC.GetLatestBalance(ctx, env.cash.ID)
	if err != nil {
		t.Fatalf("GetLatestBalance: %v", err)
	}
	if !snapshot.RunningBalance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("cash balance = %s, want 100", snapshot.RunningBalance)
	}

	consistent, err := env.ledgerUC.CheckConsistency(ctx)
	if err != nil {
		t.Fatalf("CheckConsistency: %v", err)
	}
	if !consistent {
		t.Fatal("ledger reported inconsistent after concurrent postings")
	}
}
