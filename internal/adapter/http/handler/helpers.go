package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/clubops/ledger/internal/adapter/http/dto"
	"github.com/clubops/ledger/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrPeriodNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrZeroTotal),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrBranchUnknown),
		errors.Is(err, domain.ErrInvalidAccountName),
		errors.Is(err, domain.ErrInvalidAccountCode),
		errors.Is(err, domain.ErrInvalidAccountType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnbalanced),
		errors.Is(err, domain.ErrInvalidAccount):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrPeriodClosed),
		errors.Is(err, domain.ErrPeriodAlreadyClosed),
		errors.Is(err, domain.ErrDuplicateReference):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrGatewayUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, name string, def int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}

	return n
}
