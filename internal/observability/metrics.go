package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "vitrine_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitrine_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitrine_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// FeedBuilds tracks portal feed generation
	FeedBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitrine_feed_builds_total",
			Help: "Number of portal feed documents generated",
		},
		[]string{"portal", "status"},
	)

	// LeadsClassified tracks lead classification outcomes
	LeadsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitrine_leads_classified_total",
			Help: "Number of leads classified by type",
		},
		[]string{"type"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitrine_active_connections",
			Help: "Number of active connections",
		},
	)
)
