// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchAPIRequests counts outbound search API calls.
	// Labels: result (success, error)
	SearchAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seeker",
			Subsystem: "search_api",
			Name:      "requests_total",
			Help:      "Total number of search API requests by result",
		},
		[]string{"result"},
	)

	// SearchAPIDuration tracks search API round-trip latency.
	SearchAPIDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "seeker",
			Subsystem: "search_api",
			Name:      "request_duration_seconds",
			Help:      "Duration of search API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// SearchCacheLookups counts response cache lookups.
	// Labels: result (hit, miss)
	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seeker",
			Subsystem: "search_cache",
			Name:      "lookups_total",
			Help:      "Total number of search response cache lookups by result",
		},
		[]string{"result"},
	)

	// TrainRuns counts training runs.
	// Labels: result (success, no_data, error)
	TrainRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seeker",
			Subsystem: "model",
			Name:      "train_runs_total",
			Help:      "Total number of model training runs by result",
		},
		[]string{"result"},
	)

	// ModelDocuments is the number of documents the current model was fitted on.
	ModelDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "seeker",
			Subsystem: "model",
			Name:      "documents",
			Help:      "Number of documents collected for the current model",
		},
	)

	// Classifications counts predicted categories.
	// Labels: category (built-in categories, or "other")
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seeker",
			Subsystem: "model",
			Name:      "classifications_total",
			Help:      "Total number of classified search results by predicted category",
		},
		[]string{"category"},
	)

	// HTTPRequests counts handled HTTP requests.
	// Labels: method, route, status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seeker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)
)

// RegisterCacheEntries exports the response cache size as
// seeker_search_cache_entries. It panics if called twice.
func RegisterCacheEntries(size func() float64) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "seeker",
			Subsystem: "search_cache",
			Name:      "entries",
			Help:      "Number of entries held by the search response cache",
		},
		size,
	)
}
