package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// BalanceService defines the balance projection operations needed by the
// handler.
type BalanceService interface {
	GetLatestBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error)
	GetPeriodBalance(ctx context.Context, input usecase.PeriodBalanceInput) (*domain.BalanceSnapshot, error)
	GetBalanceHistory(ctx context.Context, input usecase.BalanceHistoryInput) ([]domain.BalanceSnapshot, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]domain.LedgerEntry, error)
}

// BalanceHandler handles account balance and entry HTTP requests.
type BalanceHandler struct {
	service BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(service BalanceService) *BalanceHandler {
	return &BalanceHandler{service: service}
}

// GetBalance handles GET /api/v1/accounts/{id}/balance. With a period query
// parameter it returns period-to-date totals instead of the latest snapshot.
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	var (
		snapshot *domain.BalanceSnapshot
		err      error
	)
	if periodID := r.URL.Query().Get("period"); periodID != "" {
		snapshot, err = h.service.GetPeriodBalance(r.Context(), usecase.PeriodBalanceInput{
			AccountID: accountID,
			PeriodID:  periodID,
		})
	} else {
		snapshot, err = h.service.GetLatestBalance(r.Context(), accountID)
	}
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotFromDomain(snapshot))
}

// GetHistory handles GET /api/v1/accounts/{id}/balance/history.
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	snapshots, err := h.service.GetBalanceHistory(r.Context(), usecase.BalanceHistoryInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := dto.BalanceHistoryResponse{
		AccountID: accountID,
		Snapshots: make([]dto.BalanceSnapshotResponse, len(snapshots)),
		Total:     len(snapshots),
	}
	for i := range snapshots {
		resp.Snapshots[i] = dto.SnapshotFromDomain(&snapshots[i])
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListEntries handles GET /api/v1/accounts/{id}/entries.
func (h *BalanceHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	entries, err := h.service.ListEntries(r.Context(), usecase.ListEntriesInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := dto.ListEntriesResponse{
		Entries: make([]dto.EntryResponse, len(entries)),
		Total:   len(entries),
	}
	for i := range entries {
		resp.Entries[i] = dto.EntryFromDomain(&entries[i])
	}

	writeJSON(w, http.StatusOK, resp)
}
