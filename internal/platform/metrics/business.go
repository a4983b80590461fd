package metrics

import "time"

// RecordQuoteCreated increments the created quotes counter.
func RecordQuoteCreated() {
	QuotesCreatedTotal.Inc()
}

// RecordQuoteLookup records the outcome of a lookup by ID.
// Result should be one of LookupFound, LookupNotFound or LookupError.
func RecordQuoteLookup(result string) {
	QuoteLookupsTotal.WithLabelValues(result).Inc()
}

// RecordQuotesSeeded adds count to the seeded quotes counter.
func RecordQuotesSeeded(count int) {
	if count <= 0 {
		return
	}
	QuotesSeededTotal.Add(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	DBCircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
