package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	AnalyticsBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_build_duration_seconds",
			Help:    "Time spent deriving the per-project analytics payload",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
	)

	AnalyticsCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_cache_requests_total",
			Help: "Analytics payload cache lookups by outcome",
		},
		[]string{"outcome"}, // outcome: hit, miss, bypass
	)

	TaskCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Total number of tasks created",
		},
	)

	ProjectCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "projects_created_total",
			Help: "Total number of projects created",
		},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func RecordAnalyticsBuild(duration time.Duration) {
	AnalyticsBuildDuration.Observe(duration.Seconds())
}

func RecordCacheLookup(outcome string) {
	AnalyticsCacheHits.WithLabelValues(outcome).Inc()
}
