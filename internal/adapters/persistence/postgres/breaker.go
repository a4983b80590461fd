package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/config"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/metrics"
)

// BreakerName identifies the database circuit breaker in logs and metrics.
const BreakerName = "postgres"

// Breaker guards database calls with a circuit breaker.
// While open, calls fail fast with a domain.UnavailableError instead of
// waiting on a database that is already failing.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a breaker that opens after cfg.MaxFailures consecutive
// failures and allows cfg.HalfOpenLimit trial calls after cfg.Timeout.
func NewBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.HalfOpenLimit,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.SetCircuitBreakerState(name, int(to))
		},
		IsSuccessful: isSuccessful,
	}

	metrics.SetCircuitBreakerState(BreakerName, int(gobreaker.StateClosed))

	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// isSuccessful reports which errors say nothing about database health.
// A missing row or a caller giving up must not trip the breaker.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, context.Canceled)
}

// Do runs fn through the breaker. A nil Breaker runs fn directly.
func (b *Breaker) Do(fn func() error) error {
	if b == nil {
		return fn()
	}

	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return domain.NewUnavailableError(BreakerName, "circuit breaker is open")
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return domain.NewUnavailableError(BreakerName, "circuit breaker is half-open")
	default:
		return err
	}
}

// State returns the current breaker state. A nil Breaker is always closed.
func (b *Breaker) State() gobreaker.State {
	if b == nil {
		return gobreaker.StateClosed
	}

	return b.cb.State()
}
