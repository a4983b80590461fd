// Package memory provides an in-process QuoteRepository.
// It backs the local profile and tests; data does not survive a restart.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

// Compile-time interface check.
var _ ports.QuoteStore = (*QuoteRepository)(nil)

// QuoteRepository is a thread-safe in-memory quote store.
// IDs are assigned sequentially starting at 1 and quotes are kept in insertion order.
type QuoteRepository struct {
	mu     sync.RWMutex
	quotes []*domain.Quote
	nextID int64
	now    func() time.Time
}

// Option configures a QuoteRepository.
type Option func(*QuoteRepository)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *QuoteRepository) {
		r.now = now
	}
}

// NewQuoteRepository creates an empty in-memory repository.
func NewQuoteRepository(opts ...Option) *QuoteRepository {
	r := &QuoteRepository{
		quotes: make([]*domain.Quote, 0),
		nextID: 1,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create stores a new quote and returns a copy with its assigned ID.
func (r *QuoteRepository) Create(ctx context.Context, attrs domain.QuoteAttributes) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	q := domain.NewQuote(attrs, r.now().UTC())
	q.ID = r.nextID
	r.nextID++
	r.quotes = append(r.quotes, q)

	out := *q

	return &out, nil
}

// FindByID returns a copy of the quote with the given ID.
func (r *QuoteRepository) FindByID(ctx context.Context, id int64) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// IDs are dense and ascending, so the slot is known unless the ID is out of range.
	if id < 1 || id > int64(len(r.quotes)) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	out := *r.quotes[id-1]

	return &out, nil
}

// FindAll returns copies of every stored quote in insertion order.
func (r *QuoteRepository) FindAll(ctx context.Context) ([]*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Quote, len(r.quotes))
	for i, q := range r.quotes {
		c := *q
		out[i] = &c
	}

	return out, nil
}

// Name implements ports.HealthChecker.
func (r *QuoteRepository) Name() string {
	return "memory"
}

// Check implements ports.HealthChecker. The in-memory store is always healthy.
func (r *QuoteRepository) Check(ctx context.Context) error {
	return ctx.Err()
}

// Len returns the number of stored quotes.
func (r *QuoteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.quotes)
}
