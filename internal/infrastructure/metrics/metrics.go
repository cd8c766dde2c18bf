package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	PostingsCreated  prometheus.Counter
	PostingsReversed prometheus.Counter
	PostingDuration  prometheus.Histogram
	VoucherAmount    prometheus.Histogram
	PostingErrors    *prometheus.CounterVec
	GatewayRetries   prometheus.Counter

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Period metrics
	PeriodsClosed prometheus.Counter

	// Outbox metrics
	EventsPublished *prometheus.CounterVec
	PublishErrors   *prometheus.CounterVec
	OutboxBacklog   prometheus.Gauge

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return &Metrics{
		PostingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_postings_created_total",
			Help: "Total transactions posted through the gateway",
		}),
		PostingsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_postings_reversed_total",
			Help: "Total reversal transactions posted",
		}),
		PostingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_posting_duration_seconds",
			Help:    "Voucher posting duration",
			Buckets: prometheus.DefBuckets,
		}),
		VoucherAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_voucher_amount",
			Help:    "Distribution of posted voucher total values",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		PostingErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_posting_errors_total",
				Help: "Total posting failures",
			},
			[]string{"reason"},
		),
		GatewayRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_gateway_retries_total",
			Help: "Total posting gateway submit retries",
		}),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_account_operations_total",
				Help: "Total account operations",
			},
			[]string{"operation"},
		),

		PeriodsClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_periods_closed_total",
			Help: "Total posting periods closed",
		}),

		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_events_published_total",
				Help: "Total outbox events published",
			},
			[]string{"event_type"},
		),
		PublishErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_publish_errors_total",
				Help: "Total outbox publish failures",
			},
			[]string{"event_type"},
		),
		OutboxBacklog: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_outbox_backlog",
			Help: "Unpublished events seen in the last outbox poll",
		}),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_db_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
