package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/usecase"
)

// LedgerService defines the ledger-wide operations needed by the handler.
type LedgerService interface {
	TrialBalance(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error)
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	service LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// TrialBalance handles GET /api/v1/ledger/trial-balance?period=.
func (h *LedgerHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	periodID := r.URL.Query().Get("period")
	if periodID == "" {
		writeError(w, http.StatusBadRequest, "period query parameter is required")
		return
	}

	rows, err := h.service.TrialBalance(r.Context(), periodID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromDomain(periodID, rows))
}

// Consistency handles GET /api/v1/ledger/consistency. A drifted ledger is a
// valid report, not a failed request.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.service.CheckConsistency(r.Context())
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
		Consistent: consistent,
		CheckedAt:  time.Now().UTC(),
	})
}
