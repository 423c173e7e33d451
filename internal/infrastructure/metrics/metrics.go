package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ingestion metrics
	MessagesReceived     prometheus.Counter
	MessagesIgnored      prometheus.Counter
	MessagesDuplicate    prometheus.Counter
	RecordsAutoConfirmed prometheus.Counter
	RecordsStaged        prometheus.Counter
	IngestErrors         *prometheus.CounterVec

	// Review metrics
	RecordsConfirmed prometheus.Counter
	RecordsRejected  prometheus.Counter

	// Transaction metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionAmount   *prometheus.HistogramVec

	// Inbox polling metrics
	PollCycles    prometheus.Counter
	PollErrors    prometheus.Counter
	PollBatchSize prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ingestion metrics
		MessagesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_messages_received_total",
			Help: "Total number of inbox messages processed",
		}),
		MessagesIgnored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_messages_ignored_total",
			Help: "Total number of messages with no extractable amount",
		}),
		MessagesDuplicate: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_messages_duplicate_total",
			Help: "Total number of messages matching an existing record",
		}),
		RecordsAutoConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_records_auto_confirmed_total",
			Help: "Total number of records written directly to the ledger",
		}),
		RecordsStaged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_records_staged_total",
			Help: "Total number of records held for review",
		}),
		IngestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_ingest_errors_total",
				Help: "Total number of ingestion errors by type",
			},
			[]string{"error_type"},
		),

		// Review metrics
		RecordsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_records_confirmed_total",
			Help: "Total number of staged records confirmed",
		}),
		RecordsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_records_rejected_total",
			Help: "Total number of staged records rejected",
		}),

		// Transaction metrics
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_transactions_created_total",
				Help: "Total number of transactions created by origin",
			},
			[]string{"origin", "direction"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 50000, 100000},
			},
			[]string{"direction"},
		),

		// Inbox polling metrics
		PollCycles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_inbox_poll_cycles_total",
			Help: "Total number of inbox poll cycles",
		}),
		PollErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_inbox_poll_errors_total",
			Help: "Total number of failed inbox polls",
		}),
		PollBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintrack_inbox_poll_batch_size",
			Help:    "Number of fresh messages handled per poll",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fintrack_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}

// ObserveIngest records the outcome of a single ingested message.
func (m *Metrics) ObserveIngest(outcome string) {
	m.MessagesReceived.Inc()

	switch outcome {
	case "ignored":
		m.MessagesIgnored.Inc()
	case "duplicate":
		m.MessagesDuplicate.Inc()
	case "confirmed":
		m.RecordsAutoConfirmed.Inc()
	case "staged":
		m.RecordsStaged.Inc()
	}
}
