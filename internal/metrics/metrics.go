package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Database connection pool metrics
	DBMaxOpenConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_max_open_connections",
			Help: "Maximum number of open database connections",
		},
		[]string{"database"},
	)

	DBOpenConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of open database connections",
		},
		[]string{"database"},
	)

	DBIdleConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		},
		[]string{"database"},
	)

	DBInUseConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections in use",
		},
		[]string{"database"},
	)

	// Business metrics
	WalletsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallets_created_total",
			Help: "Total number of wallets created",
		},
	)
)

// RegisterDBMetrics periodically samples database connection pool metrics
func RegisterDBMetrics(db *sql.DB, dbName string) {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			stats := db.Stats()

			DBMaxOpenConns.WithLabelValues(dbName).Set(float64(stats.MaxOpenConnections))
			DBOpenConns.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			DBIdleConns.WithLabelValues(dbName).Set(float64(stats.Idle))
			DBInUseConns.WithLabelValues(dbName).Set(float64(stats.InUse))
		}
	}()
}
