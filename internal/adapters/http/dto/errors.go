// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/telemetry"
)

// Messages returned in error bodies. Clients match on these strings.
const (
	MessageQuoteNotFound = "no quote matches that ID"
	MessageLookupFailed  = "there was some other error"
	MessageCreateFailed  = "An error occurred"
	MessageInternal      = "an internal error occurred"
	MessageTimeout       = "request timeout exceeded"
	MessageRouteNotFound = "route not found"
)

// ContextKeyTraceID is the gin.Context key holding the active trace ID.
const ContextKeyTraceID = telemetry.ContextKeyTraceID

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates an error body with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// ErrorMessages selects what an operation tells the client when it fails.
// An empty NotFound folds not-found errors into Fallback.
type ErrorMessages struct {
	NotFound string
	Fallback string
}

// Per-operation error messages.
var (
	ListQuotesErrors  = ErrorMessages{Fallback: MessageLookupFailed}
	GetQuoteErrors    = ErrorMessages{NotFound: MessageQuoteNotFound, Fallback: MessageLookupFailed}
	CreateQuoteErrors = ErrorMessages{Fallback: MessageCreateFailed}
)

// StatusFor maps err to a status code and client message.
// Only not-found is distinguished; every other failure is a 500.
func StatusFor(err error, msgs ErrorMessages) (int, string) {
	if msgs.NotFound != "" && domain.IsNotFound(err) {
		return http.StatusNotFound, msgs.NotFound
	}

	return http.StatusInternalServerError, msgs.Fallback
}

// HandleError writes the error body for err and logs the cause.
// Internal details never reach the response.
func HandleError(c *gin.Context, err error, msgs ErrorMessages) {
	status, message := StatusFor(err, msgs)

	if status >= http.StatusInternalServerError {
		level := slog.LevelError
		if isClientFault(err) {
			level = slog.LevelWarn
		}

		logging.FromContext(c.Request.Context()).Log(c.Request.Context(), level, "request failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
			slog.String(logging.KeyTraceID, GetTraceID(c)),
		)
	}

	c.AbortWithStatusJSON(status, NewErrorResponse(message))
}

// isClientFault reports failures caused by the request rather than the service.
func isClientFault(err error) bool {
	return domain.IsValidation(err) || domain.IsNotFound(err) ||
		errors.Is(err, ErrValidation) || errors.Is(err, ErrBinding)
}

// GetTraceID returns the trace ID for the request.
// It prefers the value stored by the telemetry middleware, then the active
// span, then the X-Request-ID header. Returns empty string if none is set.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyTraceID); exists {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}
