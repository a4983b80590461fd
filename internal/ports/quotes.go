// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver rows or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
package ports

import (
	"context"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
)

// QuoteRepository is the persistence contract for quotes.
// Both the PostgreSQL and the in-memory adapters implement it.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    repo ports.QuoteRepository
//	}
type QuoteRepository interface {
	// Create persists a new quote built from attrs and returns it with
	// its assigned ID and timestamps. Attributes are not validated here.
	Create(ctx context.Context, attrs domain.QuoteAttributes) (*domain.Quote, error)

	// FindByID retrieves a quote by its identifier.
	// Returns domain.ErrNotFound if no quote has that ID.
	FindByID(ctx context.Context, id int64) (*domain.Quote, error)

	// FindAll returns every stored quote in the store's native order.
	// An empty store yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]*domain.Quote, error)
}

// QuoteStore is a QuoteRepository that can also report its health.
// The service entry point registers it with the HealthRegistry.
type QuoteStore interface {
	QuoteRepository
	HealthChecker
}
