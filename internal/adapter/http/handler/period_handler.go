package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/domain"
)

// PeriodService defines the branch and period directory operations needed by
// the handler.
type PeriodService interface {
	ListBranches(ctx context.Context) ([]*domain.Branch, error)
	ListPeriods(ctx context.Context) ([]*domain.PostingPeriod, error)
	GetPeriod(ctx context.Context, id string) (*domain.PostingPeriod, error)
	ClosePeriod(ctx context.Context, id string) (*domain.PostingPeriod, error)
}

// PeriodHandler handles branch and posting period HTTP requests.
type PeriodHandler struct {
	service PeriodService
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(service PeriodService) *PeriodHandler {
	return &PeriodHandler{service: service}
}

// ListBranches handles GET /api/v1/branches.
func (h *PeriodHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.ListBranches(r.Context())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := make([]dto.BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = dto.BranchFromDomain(b)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListPeriods handles GET /api/v1/periods.
func (h *PeriodHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.ListPeriods(r.Context())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := make([]dto.PeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = dto.PeriodFromDomain(p)
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPeriod handles GET /api/v1/periods/{id}.
func (h *PeriodHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	period, err := h.service.GetPeriod(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodFromDomain(period))
}

// ClosePeriod handles POST /api/v1/periods/{id}/close.
func (h *PeriodHandler) ClosePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	period, err := h.service.ClosePeriod(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodFromDomain(period))
}
