package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/platform/metrics"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/ports"
)

// SeedQuotes is the fixed dataset loaded by the Seeder, in insertion order.
var SeedQuotes = []domain.QuoteAttributes{
	{
		Content:  "Sometimes you win, sometimes you learn.",
		Author:   "Unknown",
		Category: "motivational",
	},
	{
		Content:  "Do or do not, there is no try.",
		Author:   "Yoda",
		Category: "motivational",
	},
	{
		Content:  "A simple 'Hello' could lead to a million things.",
		Author:   "Unknown",
		Category: "motivational",
	},
	{
		Content:  "The expert at anything was once a beginner.",
		Author:   "Helen Hayes",
		Category: "education",
	},
	{
		Content:  "You are never too old to get a new goal or dream a new dream!",
		Author:   "CS Lewis",
		Category: "motivational",
	},
	{
		Content:  "If you want something you never had, you have to do something you've never done!",
		Author:   "Unknown",
		Category: "motivational",
	},
	{
		Content:  "Getting to know a problem is a bit like getting to know a person: it's a gradual process that requires patience, and there is no state of completion. You can never know the full of a problem, because there is never comprehensive information available. You have to simply draw the line somewhere and make up the rest as you go along.",
		Author:   "Frank Chimero",
		Category: "design",
	},
	{
		Content:  "Others have seen what is and asked why. I have seen what could be and asked why not?",
		Author:   "Pablo Picasso",
		Category: "design",
	},
	{
		Content:  "Who are we, who is each one of us, if not a combinatoria of experiences, information, books we have read, things imagined?",
		Author:   "Italo Calvino",
		Category: "literary",
	},
	{
		Content:  "Who are only undefeated / Because we have gone on trying",
		Author:   "T.S. Eliot",
		Category: "poetry",
	},
	{
		Content:  "In search of the difficulty rather than in its clutch. The disquiet of him who lacks an adversary.",
		Author:   "Samuel Beckett",
		Category: "literary",
	},
	{
		Content:  "When the going gets weird, the weird turn pro.",
		Author:   "Hunter S. Thompson",
		Category: "gonzo",
	},
	{
		Content:  "Truth suffers from too much analysis.",
		Author:   "Frank Herbert",
		Category: "philosophical",
	},
	{
		Content:  "Over and over again, a thousand voices shout: No Image! No Message!",
		Author:   "Max Bruinsma",
		Category: "design",
	},
	{
		Content:  "A circle looks at a square and sees a badly made circle.",
		Author:   "Jeff VanderMeer",
		Category: "design",
	},
	{
		Content:  "The aspects of things that are most important for us are hidden because of their simplicity and familiarity.",
		Author:   "Ludwig Wittgenstein",
		Category: "philosophical",
	},
	{
		Content:  "All struggle is against impermanence.",
		Author:   "lord krunkington iii",
		Category: "philosophical",
	},
	{
		Content:  "All language is mystification, and everything is fiction.",
		Author:   "Brion Gysin",
		Category: "literary",
	},
	{
		Content:  "A place where the unknown past and the emergent future meet in a vibrating soundless hum.",
		Author:   "William Burroughs",
		Category: "philosophical",
	},
	{
		Content:  "A slow-fade into the silent, imperceptible, ceaseless procession of the stars.",
		Author:   "Fractalontology",
		Category: "poetry",
	},
	{
		Content:  "Nodes, clusters, trackbacks, memes... truth follows bandwidth, as sure as use follows invention.",
		Author:   "Richard Powers",
		Category: "technology",
	},
	{
		Content:  "The feeling that one is on the edge of many things: that there are many worlds from which we are separated by only a film; that a flick of the wrist, a turn of the body another way will bring us to a new world.",
		Author:   "Theodore Roethke",
		Category: "philosophical",
	},
}

// Seeder loads a fixed set of quotes into a repository.
// It does not deduplicate: every run appends the whole dataset again.
type Seeder struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
	data   []domain.QuoteAttributes
}

// SeederConfig contains configuration for the seeder.
type SeederConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger

	// Data overrides SeedQuotes when non-nil.
	Data []domain.QuoteAttributes
}

// NewSeeder creates a seeder. It panics if no repository is given.
func NewSeeder(cfg SeederConfig) *Seeder {
	if cfg.Repository == nil {
		panic("app: Seeder requires a Repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	data := cfg.Data
	if data == nil {
		data = SeedQuotes
	}

	return &Seeder{
		repo:   cfg.Repository,
		logger: logger,
		data:   data,
	}
}

// Seed inserts every entry one at a time, in order. It stops at the first
// failure and returns how many quotes were created before it.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	created := 0
	defer func() { metrics.RecordQuotesSeeded(created) }()

	for i, attrs := range s.data {
		if _, err := s.repo.Create(ctx, attrs); err != nil {
			s.logger.ErrorContext(ctx, "seeding stopped",
				slog.Int("index", i),
				slog.Int("created", created),
				slog.Any("error", err),
			)
			return created, fmt.Errorf("seeding quote %d: %w", i, err)
		}
		created++
	}

	s.logger.InfoContext(ctx, "seeded quotes",
		slog.Int("count", created),
	)

	return created, nil
}
