package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/http/dto"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/app"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
)

// QuoteHandler serves the /quotes resource.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /quotes.
// Responds with every stored quote, or [] when there are none.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, dto.ListQuotesErrors)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// GetQuote handles GET /quotes/:id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err, dto.GetQuoteErrors)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /quotes.
// Only content, author and category are read from the "quote" object.
// On success the response is the full list, including the new quote.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		if fields := dto.ValidationErrors(err); len(fields) > 0 {
			logging.FromContext(c.Request.Context()).Debug("rejected quote body",
				slog.Any("fields", fields),
			)
		}

		dto.HandleError(c, err, dto.CreateQuoteErrors)

		return
	}

	quotes, err := h.service.CreateQuote(c.Request.Context(), req.Quote.ToAttributes())
	if err != nil {
		dto.HandleError(c, err, dto.CreateQuoteErrors)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// RegisterQuoteRoutes registers the quote routes on the given router group:
//   - GET  /quotes
//   - GET  /quotes/:id
//   - POST /quotes
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/:id", h.GetQuote)
	quotes.POST("", h.CreateQuote)
}
