package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// PostingService defines the posting operations needed by the handler.
type PostingService interface {
	PostVoucher(ctx context.Context, input usecase.PostVoucherInput) (*domain.Transaction, domain.PostedReference, error)
	Reverse(ctx context.Context, input usecase.ReverseInput) (*domain.Transaction, domain.PostedReference, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
}

// PostingHandler handles posting HTTP requests.
type PostingHandler struct {
	service PostingService
}

// NewPostingHandler creates a new PostingHandler.
func NewPostingHandler(service PostingService) *PostingHandler {
	return &PostingHandler{service: service}
}

// Post handles POST /api/v1/postings.
func (h *PostingHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.PostVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, ref, err := h.service.PostVoucher(r.Context(), req.ToUseCaseInput())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PostVoucherFromDomain(txn, ref))
}

// Reverse handles POST /api/v1/postings/{reference}/reverse.
func (h *PostingHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	var req dto.ReverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, ref, err := h.service.Reverse(r.Context(), req.ToUseCaseInput(reference))
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PostVoucherFromDomain(txn, ref))
}

// Get handles GET /api/v1/postings/{reference}.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	txn, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}
