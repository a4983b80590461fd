package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/logging"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/metrics"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

const instrumentationName = "github.com/ameliadz/react-on-rails-quotes-api/postgres"

// Compile-time interface check.
var _ ports.QuoteStore = (*QuoteRepository)(nil)

// QuoteRepository stores quotes in the quotes table.
type QuoteRepository struct {
	db      *sql.DB
	breaker *Breaker
	tracer  trace.Tracer
}

// NewQuoteRepository creates a repository over db. breaker may be nil.
func NewQuoteRepository(db *sql.DB, breaker *Breaker) *QuoteRepository {
	return &QuoteRepository{
		db:      db,
		breaker: breaker,
		tracer:  otel.Tracer(instrumentationName),
	}
}

// run executes one statement through the breaker inside a client span and
// records its latency under op.
func (repo *QuoteRepository) run(ctx context.Context, op, query string, fn func(context.Context) error) error {
	ctx, span := repo.tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "executing query",
		slog.String("operation", op),
		slog.String("query", query),
	)

	start := time.Now()
	err := repo.breaker.Do(func() error { return fn(ctx) })
	metrics.RecordDBQuery(op, time.Since(start))

	if !isSuccessful(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (repo *QuoteRepository) Create(ctx context.Context, attrs domain.QuoteAttributes) (*domain.Quote, error) {
	const query = `
INSERT INTO quotes (content, author, category)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	q := &domain.Quote{
		Content:  attrs.Content,
		Author:   attrs.Author,
		Category: attrs.Category,
	}

	err := repo.run(ctx, "quotes.create", query, func(ctx context.Context) error {
		return repo.db.QueryRowContext(ctx, query, attrs.Content, attrs.Author, attrs.Category).
			Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	})

	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	return q, nil
}

func (repo *QuoteRepository) FindByID(ctx context.Context, id int64) (*domain.Quote, error) {
	const query = `
SELECT id, content, author, category, created_at, updated_at
FROM quotes
WHERE id = $1`

	var q domain.Quote

	err := repo.run(ctx, "quotes.find_by_id", query, func(ctx context.Context) error {
		return repo.db.QueryRowContext(ctx, query, id).
			Scan(&q.ID, &q.Content, &q.Author, &q.Category, &q.CreatedAt, &q.UpdatedAt)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}

	return &q, nil
}

func (repo *QuoteRepository) FindAll(ctx context.Context) ([]*domain.Quote, error) {
	const query = `
SELECT id, content, author, category, created_at, updated_at
FROM quotes
ORDER BY id ASC`

	quotes := make([]*domain.Quote, 0, 32)

	err := repo.run(ctx, "quotes.find_all", query, func(ctx context.Context) error {
		rows, err := repo.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var q domain.Quote
			if err := rows.Scan(&q.ID, &q.Content, &q.Author, &q.Category, &q.CreatedAt, &q.UpdatedAt); err != nil {
				return err
			}
			quotes = append(quotes, &q)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}

	return quotes, nil
}

// Name implements ports.HealthChecker.
func (repo *QuoteRepository) Name() string {
	return "postgres"
}

// Check implements ports.HealthChecker. It bypasses the breaker so that
// readiness reflects the database itself, but reports an open circuit.
func (repo *QuoteRepository) Check(ctx context.Context) error {
	if err := repo.db.PingContext(ctx); err != nil {
		return err
	}

	if repo.breaker.State() == gobreaker.StateOpen {
		return domain.NewUnavailableError(BreakerName, "circuit breaker is open")
	}

	return nil
}
