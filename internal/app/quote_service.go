// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/metrics"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if no repository is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a Repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// ListQuotes returns every stored quote.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	quotes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "listed quotes",
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// GetQuote looks up a quote by the raw identifier taken from the request.
// A malformed identifier is a validation error, never a not-found.
func (s *QuoteService) GetQuote(ctx context.Context, rawID string) (*domain.Quote, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		metrics.RecordQuoteLookup(metrics.LookupError)
		s.logger.WarnContext(ctx, "malformed quote ID",
			slog.String("quote_id", rawID),
		)
		return nil, domain.NewValidationErrorWithValue("id", "must be an integer", rawID)
	}

	quote, err := s.repo.FindByID(ctx, id)
	switch {
	case domain.IsNotFound(err):
		metrics.RecordQuoteLookup(metrics.LookupNotFound)
		s.logger.InfoContext(ctx, "quote not found",
			slog.Int64("quote_id", id),
		)
		return nil, err
	case err != nil:
		metrics.RecordQuoteLookup(metrics.LookupError)
		s.logger.ErrorContext(ctx, "failed to fetch quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	metrics.RecordQuoteLookup(metrics.LookupFound)

	return quote, nil
}

// CreateQuote validates and stores a new quote, then returns the full list
// including it. The list is read after the insert as a separate call.
func (s *QuoteService) CreateQuote(ctx context.Context, attrs domain.QuoteAttributes) ([]*domain.Quote, error) {
	if err := attrs.Validate(); err != nil {
		s.logger.WarnContext(ctx, "rejected quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	quote, err := s.repo.Create(ctx, attrs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	metrics.RecordQuoteCreated()
	s.logger.InfoContext(ctx, "created quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return s.ListQuotes(ctx)
}
