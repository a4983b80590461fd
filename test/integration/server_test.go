//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/handlers"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/persistence/memory"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/app"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/config"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newInProcessServer wires the full router over a seeded memory store.
func newInProcessServer() (*httptest.Server, error) {
	return newServerWithStore(memory.NewQuoteRepository(), true)
}

func newServerWithStore(store ports.QuoteStore, seed bool) (*httptest.Server, error) {
	logger := discardLogger()

	if seed {
		seeder := app.NewSeeder(app.SeederConfig{Repository: store, Logger: logger})
		if _, err := seeder.Seed(context.Background()); err != nil {
			return nil, err
		}
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{Repository: store, Logger: logger})

	srv := httpadapter.New(&config.ServerConfig{
		Host:           "127.0.0.1",
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: config.DefaultMaxRequestSize,
	}, logger)

	httpadapter.SetupRouter(srv.Engine(), httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "quotes-api-integration",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       5 * time.Second,
	})

	return httptest.NewServer(srv), nil
}
