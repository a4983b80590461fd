package dto

import (
	"time"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
)

// CreateQuoteRequest is the body of POST /quotes.
// The quote wrapper is mandatory.
type CreateQuoteRequest struct {
	Quote *QuoteParams `json:"quote" validate:"required"`
}

// QuoteParams holds the client-writable quote fields.
// Anything else submitted under "quote" is dropped during decoding.
type QuoteParams struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// ToAttributes converts the params into domain attributes.
func (p *QuoteParams) ToAttributes() domain.QuoteAttributes {
	return domain.QuoteAttributes{
		Content:  p.Content,
		Author:   p.Author,
		Category: p.Category,
	}
}

// QuoteResponse is the JSON representation of a stored quote.
type QuoteResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Content:   q.Content,
		Author:    q.Author,
		Category:  q.Category,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// NewQuoteListResponse converts a list of quotes. It never returns nil,
// so an empty store encodes as [].
func NewQuoteListResponse(quotes []*domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}
