package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/usecase"
)

type ledgerServiceStub struct {
	trialFn       func(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error)
	consistencyFn func(ctx context.Context) (bool, error)
}

func (s *ledgerServiceStub) TrialBalance(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error) {
	return s.trialFn(ctx, periodID)
}

func (s *ledgerServiceStub) CheckConsistency(ctx context.Context) (bool, error) {
	return s.consistencyFn(ctx)
}

func TestLedgerHandler_TrialBalance(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		trialFn: func(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error) {
			if periodID != "2024-01" {
				t.Fatalf("unexpected period %s", periodID)
			}
			return []usecase.TrialBalanceRow{
				{AccountID: "acc-cash", AccountCode: 1910, AccountName: "Bank", DebitTotal: decimal.NewFromInt(100), CreditTotal: decimal.Zero},
				{AccountID: "acc-revenue", AccountCode: 3010, AccountName: "Fees", DebitTotal: decimal.Zero, CreditTotal: decimal.NewFromInt(100)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ledger/trial-balance?period=2024-01", nil)
	rec := httptest.NewRecorder()

	handler.TrialBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TrialBalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balanced {
		t.Fatal("expected trial balance to report balanced")
	}
	if !resp.DebitTotal.Equal(decimal.NewFromInt(100)) || !resp.CreditTotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected grand totals: debit=%s credit=%s", resp.DebitTotal, resp.CreditTotal)
	}
}

func TestLedgerHandler_TrialBalance_MissingPeriod(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		trialFn: func(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error) {
			t.Fatal("TrialBalance should not be called without a period")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ledger/trial-balance", nil)
	rec := httptest.NewRecorder()

	handler.TrialBalance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_Consistency(t *testing.T) {
	testCases := []struct {
		name       string
		consistent bool
		err        error
	}{
		{name: "balanced ledger", consistent: true},
		{name: "drifted ledger", consistent: false, err: usecase.ErrInconsistentLedger},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewLedgerHandler(&ledgerServiceStub{
				consistencyFn: func(ctx context.Context) (bool, error) {
					return tc.consistent, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
			rec := httptest.NewRecorder()

			handler.Consistency(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp dto.ConsistencyResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Consistent != tc.consistent {
				t.Fatalf("expected consistent=%v, got %v", tc.consistent, resp.Consistent)
			}
		})
	}
}
