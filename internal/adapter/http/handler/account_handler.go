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

// AccountService defines the account operations needed by the handler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
}

// AccountHandler handles account HTTP requests.
type AccountHandler struct {
	service AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get handles GET /api/v1/accounts/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListAccountsInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}

	accounts, err := h.service.ListAccounts(r.Context(), input)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := dto.ListAccountsResponse{
		Accounts: make([]dto.AccountResponse, len(accounts)),
		Total:    len(accounts),
	}
	for i, a := range accounts {
		resp.Accounts[i] = dto.AccountFromDomain(a)
	}

	writeJSON(w, http.StatusOK, resp)
}
