package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/usecase"
)

func TestTrialBalanceMatchesPostings(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	for i, amount := range []int64{100, 250, 50} {
		ref := env.simpleVoucher("", decimal.NewFromInt(amount))
		ref.Reference = "CLB-2024-10" + string(rune('0'+i))
		if _, _, err := env.postingUC.PostVoucher(ctx, ref); err != nil {
			t.Fatalf("posting %d failed: %v", i, err)
		}
	}

	rows, err := env.ledgerUC.TrialBalance(ctx, env.period.ID)
	if err != nil {
		t.Fatalf("TrialBalance failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 accounts in the trial balance, got %d", len(rows))
	}

	var debitTotal, creditTotal decimal.Decimal
	for _, row := range rows {
		debitTotal = debitTotal.Add(row.DebitTotal)
		creditTotal = creditTotal.Add(row.CreditTotal)

		if row.AccountCode == 1910 && !row.DebitTotal.Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected cash debits 400, got %s", row.DebitTotal)
		}
		if row.AccountCode == 3010 && !row.CreditTotal.Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected fee credits 400, got %s", row.CreditTotal)
		}
	}

	if !debitTotal.Equal(creditTotal) {
		t.Fatalf("trial balance grand totals differ: debit=%s credit=%s", debitTotal, creditTotal)
	}
}

func TestBalanceHistoryRunningBalances(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	for i, amount := range []int64{100, 40} {
		input := env.simpleVoucher("CLB-2024-20"+string(rune('0'+i)), decimal.NewFromInt(amount))
		if _, _, err := env.postingUC.PostVoucher(ctx, input); err != nil {
			t.Fatalf("posting %d failed: %v", i, err)
		}
	}

	history, err := env.balanceUC.GetBalanceHistory(ctx, usecase.BalanceHistoryInput{AccountID: env.cash.ID})
	if err != nil {
		t.Fatalf("GetBalanceHistory failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(history))
	}
	if !history[0].RunningBalance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected first running balance 100, got %s", history[0].RunningBalance)
	}
	if !history[1].RunningBalance.Equal(decimal.NewFromInt(140)) {
		t.Fatalf("expected second running balance 140, got %s", history[1].RunningBalance)
	}
}

func TestPeriodBalanceTotals(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	if _, _, err := env.postingUC.PostVoucher(ctx, env.simpleVoucher("CLB-2024-301", decimal.NewFromInt(120))); err != nil {
		t.Fatalf("posting failed: %v", err)
	}

	snapshot, err := env.balanceUC.GetPeriodBalance(ctx, usecase.PeriodBalanceInput{
		AccountID: env.fees.ID,
		PeriodID:  env.period.ID,
	})
	if err != nil {
		t.Fatalf("GetPeriodBalance failed: %v", err)
	}

	if !snapshot.PeriodCreditTotal.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected period credits 120, got %s", snapshot.PeriodCreditTotal)
	}
	if !snapshot.RunningBalance.Equal(decimal.NewFromInt(-120)) {
		t.Fatalf("expected running balance -120, got %s", snapshot.RunningBalance)
	}
}
