package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/dto"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/handlers"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/middleware"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for /quotes requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger placed in every request context.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves /quotes. Optional.
	QuoteHandler *handlers.QuoteHandler

	// Timeout is the per-request deadline for /quotes.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the engine.
// Middleware runs in this order:
//  1. ContextLogger - base logger into the request context
//  2. Tracing - otelgin server span
//  3. Telemetry - HTTP metrics, X-Trace-ID, trace_id on the logger
//  4. Request ID and Correlation ID
//  5. Logging - skips /-/ paths
//  6. Recovery - panics become a 500, still logged as completed
//
// /-/ holds the operational endpoints; /quotes carries the request timeout.
// Unmatched routes answer 404 with the standard error body.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageRouteNotFound))
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuoteHandler != nil {
		api := engine.Group("")
		api.Use(middleware.Timeout(cfg.Timeout))
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	serviceName string,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		ServiceName:   serviceName,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
