package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/clubops/ledger/internal/adapter/http"
	"github.com/clubops/ledger/internal/adapter/http/handler"
	"github.com/clubops/ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/clubops/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/clubops/ledger/internal/adapter/repository/redis"
	"github.com/clubops/ledger/internal/infrastructure/config"
	"github.com/clubops/ledger/internal/infrastructure/eventpublisher"
	"github.com/clubops/ledger/internal/infrastructure/logger"
	"github.com/clubops/ledger/internal/infrastructure/logging"
	"github.com/clubops/ledger/internal/infrastructure/metrics"
	"github.com/clubops/ledger/internal/infrastructure/postgres"
	"github.com/clubops/ledger/internal/infrastructure/redis"
	"github.com/clubops/ledger/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	slogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	branchRepo := postgresRepo.NewBranchRepository(pool)
	periodRepo := postgresRepo.NewPeriodRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	gateway := postgresRepo.NewPostingGateway(pool, idGen)

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	postingUC := usecase.NewPostingUseCase(accountRepo, branchRepo, periodRepo, txnRepo, gateway, auditRepo, idGen)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, txnRepo, cache)
	ledgerUC := usecase.NewLedgerUseCase(txnRepo)
	periodUC := usecase.NewPeriodUseCase(branchRepo, periodRepo, outboxRepo, txManager, idGen)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		PostingHandler:   handler.NewPostingHandler(postingUC),
		BalanceHandler:   handler.NewBalanceHandler(balanceUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		PeriodHandler:    handler.NewPeriodHandler(periodUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	})

	// Start the outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  newPublisher(cfg, slogger),
		Logger:     slogger.Logger,
		Metrics:    appMetrics,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newPublisher picks the outbox sink: Kafka when brokers are configured,
// structured logs otherwise.
func newPublisher(cfg *config.Config, slogger *logging.Logger) eventpublisher.Publisher {
	if len(cfg.KafkaBrokers) > 0 {
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
		return eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	return eventpublisher.NewLogPublisher(slogger.Logger)
}
