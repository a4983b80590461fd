package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/quotes", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func TestStatusFor(t *testing.T) {
	storageErr := errors.New("connection reset by peer")

	tests := []struct {
		name        string
		err         error
		msgs        ErrorMessages
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "get not found",
			err:         domain.NewNotFoundError("quote", "999999"),
			msgs:        GetQuoteErrors,
			wantStatus:  http.StatusNotFound,
			wantMessage: MessageQuoteNotFound,
		},
		{
			name:        "get wrapped not found",
			err:         fmt.Errorf("FindByID: %w", domain.NewNotFoundError("quote", "7")),
			msgs:        GetQuoteErrors,
			wantStatus:  http.StatusNotFound,
			wantMessage: MessageQuoteNotFound,
		},
		{
			name:        "get malformed id",
			err:         domain.NewValidationErrorWithValue("id", "must be an integer", "abc"),
			msgs:        GetQuoteErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageLookupFailed,
		},
		{
			name:        "get storage fault",
			err:         storageErr,
			msgs:        GetQuoteErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageLookupFailed,
		},
		{
			name:        "get circuit open",
			err:         domain.NewUnavailableError("postgres", "circuit breaker is open"),
			msgs:        GetQuoteErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageLookupFailed,
		},
		{
			name:        "list storage fault",
			err:         storageErr,
			msgs:        ListQuotesErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageLookupFailed,
		},
		{
			name:        "create validation failure",
			err:         domain.NewValidationError("content", "can't be blank"),
			msgs:        CreateQuoteErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageCreateFailed,
		},
		{
			name:        "create folds not found into fallback",
			err:         domain.ErrNotFound,
			msgs:        CreateQuoteErrors,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: MessageCreateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := StatusFor(tt.err, tt.msgs)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		msgs       ErrorMessages
		wantStatus int
		wantBody   string
		wantLogged bool
		wantLevel  string
	}{
		{
			name:       "not found is not logged",
			err:        domain.NewNotFoundError("quote", "999999"),
			msgs:       GetQuoteErrors,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"no quote matches that ID"}`,
		},
		{
			name:       "storage fault is logged",
			err:        errors.New("FindAll: connection refused"),
			msgs:       ListQuotesErrors,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"there was some other error"}`,
			wantLogged: true,
			wantLevel:  "ERROR",
		},
		{
			name:       "create validation failure is logged at warn",
			err:        domain.NewValidationError("content", "can't be blank"),
			msgs:       CreateQuoteErrors,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"An error occurred"}`,
			wantLogged: true,
			wantLevel:  "WARN",
		},
		{
			name:       "malformed body is logged at warn",
			err:        fmt.Errorf("%w: unexpected EOF", ErrBinding),
			msgs:       CreateQuoteErrors,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"An error occurred"}`,
			wantLogged: true,
			wantLevel:  "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))

			c, w := newTestContext(http.MethodGet, "")
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
			c.Set(ContextKeyTraceID, "trace-123")

			HandleError(c, tt.err, tt.msgs)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, c.IsAborted())

			if !tt.wantLogged {
				assert.Empty(t, logs.String())
				return
			}

			assert.Contains(t, logs.String(), tt.err.Error())
			assert.Contains(t, logs.String(), `"trace_id":"trace-123"`)
			assert.Contains(t, logs.String(), `"level":"`+tt.wantLevel+`"`)
			assert.NotContains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "trace ID in context",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, "context-trace-123") },
			want:  "context-trace-123",
		},
		{
			name:  "request ID header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "header-trace-456") },
			want:  "header-trace-456",
		},
		{
			name: "context takes precedence",
			setup: func(c *gin.Context) {
				c.Set(ContextKeyTraceID, "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "context-trace-123",
		},
		{
			name:  "nothing set",
			setup: func(*gin.Context) {},
			want:  "",
		},
		{
			name:  "wrong type in context",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, 12345) },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "")
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestBindAndValidate_CreateQuoteRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    *QuoteParams
	}{
		{
			name: "all fields",
			body: `{"quote":{"content":"Test","author":"Tester","category":"test"}}`,
			want: &QuoteParams{Content: "Test", Author: "Tester", Category: "test"},
		},
		{
			name: "extra fields are dropped",
			body: `{"quote":{"content":"Test","id":999,"rating":5,"created_at":"1999-01-01T00:00:00Z"},"admin":true}`,
			want: &QuoteParams{Content: "Test"},
		},
		{
			name: "empty content still binds",
			body: `{"quote":{"content":""}}`,
			want: &QuoteParams{},
		},
		{
			name:    "missing wrapper",
			body:    `{"content":"Test"}`,
			wantErr: ErrValidation,
		},
		{
			name:    "null wrapper",
			body:    `{"quote":null}`,
			wantErr: ErrValidation,
		},
		{
			name:    "malformed json",
			body:    `{"quote":`,
			wantErr: ErrBinding,
		},
		{
			name:    "wrong type",
			body:    `{"quote":"Test"}`,
			wantErr: ErrBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			var req CreateQuoteRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Quote)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	err := Validate(&CreateQuoteRequest{})
	require.Error(t, err)

	assert.Equal(t, map[string]string{"quote": "this field is required"}, ValidationErrors(err))
	assert.Empty(t, ValidationErrors(errors.New("some error")))
}

func TestQuoteParams_ToAttributes(t *testing.T) {
	p := &QuoteParams{Content: "Test", Author: "Tester", Category: "test"}

	assert.Equal(t,
		domain.QuoteAttributes{Content: "Test", Author: "Tester", Category: "test"},
		p.ToAttributes(),
	)
}

func TestNewQuoteResponse_JSON(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	q := &domain.Quote{
		ID:        1,
		Content:   "Sometimes you win, sometimes you learn.",
		Author:    "Unknown",
		Category:  "motivational",
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	body, err := json.Marshal(NewQuoteResponse(q))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"content": "Sometimes you win, sometimes you learn.",
		"author": "Unknown",
		"category": "motivational",
		"created_at": "2024-05-01T12:00:00Z",
		"updated_at": "2024-05-01T12:00:00Z"
	}`, string(body))
}

func TestNewQuoteListResponse(t *testing.T) {
	t.Run("empty encodes as array", func(t *testing.T) {
		body, err := json.Marshal(NewQuoteListResponse(nil))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body))
	})

	t.Run("preserves order", func(t *testing.T) {
		got := NewQuoteListResponse([]*domain.Quote{{ID: 2}, {ID: 1}})
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	})
}
