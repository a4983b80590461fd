// Package metrics provides Prometheus metrics for quote operations.
//
// All metrics are registered with the Prometheus default registry and
// exposed by the health handler on /-/metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results for QuoteLookupsTotal.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Business metrics track quote operations.
var (
	// QuotesCreatedTotal counts quotes created through the API.
	QuotesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Total number of quotes created through the API",
		},
	)

	// QuoteLookupsTotal counts single-quote lookups by result.
	QuoteLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_lookups_total",
			Help: "Total number of quote lookups by result",
		},
		[]string{"result"},
	)

	// QuotesSeededTotal counts quotes inserted by the seed loader.
	QuotesSeededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_seeded_total",
			Help: "Total number of quotes inserted by the seed loader",
		},
	)
)

// Database metrics track store performance.
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBCircuitBreakerState reports the breaker state (0 closed, 1 half-open, 2 open).
	DBCircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_circuit_breaker_state",
			Help: "Database circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
