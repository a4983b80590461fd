// Command seed loads the fixed quote dataset into the configured store once.
// It is not idempotent: every run inserts the full dataset again.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/persistence"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/app"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/config"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(logging.ConfigFrom(cfg))
	logging.SetDefault(logger)

	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("seeding the in-memory store; data is discarded on exit")
	}

	store, err := persistence.Open(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("opening quote store: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing quote store", slog.Any("error", closeErr))
		}
	}()

	seeder := app.NewSeeder(app.SeederConfig{
		Repository: store,
		Logger:     logger,
	})

	created, err := seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding quotes (%d created): %w", created, err)
	}

	return nil
}
