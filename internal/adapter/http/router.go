package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clubops/ledger/internal/adapter/http/handler"
	"github.com/clubops/ledger/internal/adapter/http/middleware"
	"github.com/clubops/ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	PostingHandler   *handler.PostingHandler
	BalanceHandler   *handler.BalanceHandler
	LedgerHandler    *handler.LedgerHandler
	PeriodHandler    *handler.PeriodHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts and balance projections
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/entries", cfg.BalanceHandler.ListEntries)
			r.Get("/{id}/balance", cfg.BalanceHandler.GetBalance)
			r.Get("/{id}/balance/history", cfg.BalanceHandler.GetHistory)
		})

		// Postings
		r.Route("/postings", func(r chi.Router) {
			r.Post("/", cfg.PostingHandler.Post)
			r.Get("/{reference}", cfg.PostingHandler.Get)
			r.Post("/{reference}/reverse", cfg.PostingHandler.Reverse)
		})

		// Ledger-wide reports
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/trial-balance", cfg.LedgerHandler.TrialBalance)
			r.Get("/consistency", cfg.LedgerHandler.Consistency)
		})

		// Directories
		r.Get("/branches", cfg.PeriodHandler.ListBranches)
		r.Route("/periods", func(r chi.Router) {
			r.Get("/", cfg.PeriodHandler.ListPeriods)
			r.Get("/{id}", cfg.PeriodHandler.GetPeriod)
			r.Post("/{id}/close", cfg.PeriodHandler.ClosePeriod)
		})
	})

	return r
}
