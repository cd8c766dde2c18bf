package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrTransactionNotFound, http.StatusNotFound},
		{domain.ErrPeriodNotFound, http.StatusNotFound},
		{domain.ErrEmptyBatch, http.StatusBadRequest},
		{domain.ErrZeroTotal, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidReference, http.StatusBadRequest},
		{domain.ErrBranchUnknown, http.StatusBadRequest},
		{domain.ErrUnbalanced, http.StatusUnprocessableEntity},
		{&domain.UnbalancedError{Shortfall: decimal.NewFromInt(5)}, http.StatusUnprocessableEntity},
		{&domain.InvalidAccountError{AccountID: "acc-1", Reason: "account is locked"}, http.StatusUnprocessableEntity},
		{domain.ErrPeriodClosed, http.StatusConflict},
		{domain.ErrPeriodAlreadyClosed, http.StatusConflict},
		{domain.ErrDuplicateReference, http.StatusConflict},
		{domain.ErrGatewayUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", domain.ErrGatewayUnavailable), http.StatusServiceUnavailable},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapDomainError(rec, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("mapDomainError(%v) = %d, expected %d", tc.err, rec.Code, tc.status)
			}
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=15&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 20); got != 20 {
		t.Fatalf("expected default 20, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Fatalf("expected default for unparsable value, got %d", got)
	}
}
