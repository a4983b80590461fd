package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/dto"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into a 500 with the
// generic error body and logs it with the stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String(logging.KeyTraceID, dto.GetTraceID(c)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MessageInternal))
		}()

		c.Next()
	}
}
