// Package persistence selects and opens the configured quote store.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/persistence/memory"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/persistence/postgres"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/config"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

// Store is an open quote store together with its release function.
type Store struct {
	ports.QuoteStore

	close func() error
}

// Close releases the resources held by the store.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

// Open returns the store named by cfg.Driver. For postgres it connects,
// optionally creates the schema and wraps calls in a circuit breaker.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Driver {
	case config.DriverMemory:
		logger.InfoContext(ctx, "using in-memory quote store")
		return &Store{QuoteStore: memory.NewQuoteRepository()}, nil

	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	db, err := postgres.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.InfoContext(ctx, "database schema ready")
	}

	var breaker *postgres.Breaker
	if cfg.CircuitBreaker.Enabled {
		breaker = postgres.NewBreaker(cfg.CircuitBreaker, logger)
	}

	return &Store{
		QuoteStore: postgres.NewQuoteRepository(db, breaker),
		close:      db.Close,
	}, nil
}
