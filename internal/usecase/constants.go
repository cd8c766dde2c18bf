package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// SubmitMaxElapsedTime caps the retry window for a transient gateway
	// failure; beyond it the posting surfaces ErrGatewayUnavailable.
	SubmitMaxElapsedTime = 15 * time.Second

	// SubmitInitialInterval is the first retry backoff step.
	SubmitInitialInterval = 100 * time.Millisecond

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// BalanceCacheTTL is how long a projected latest balance stays cached.
	BalanceCacheTTL = 30 * time.Second
)
