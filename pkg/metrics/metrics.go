package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cache metrics, labelled by cache name
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierater_cache_requests_total",
			Help: "Cache lookups by result (hit, miss, stale)",
		},
		[]string{"cache", "result"},
	)

	CacheLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierater_cache_loads_total",
			Help: "Loader executions after a cache miss by outcome (ok, error, shared, discarded)",
		},
		[]string{"cache", "result"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierater_cache_evictions_total",
			Help: "Entries removed from a cache by reason",
		},
		[]string{"cache", "reason"},
	)

	// Upstream (TMDB) metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierater_upstream_requests_total",
			Help: "Requests sent to the metadata API by endpoint and status class",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierater_upstream_request_duration_seconds",
			Help:    "Latency of metadata API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "movierater_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// HTTP surface
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierater_http_requests_total",
			Help: "HTTP requests served by route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierater_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
