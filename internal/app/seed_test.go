package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ameliadz/react-on-rails-quotes-api/internal/adapters/persistence/memory"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/domain"
	"github.com/ameliadz/react-on-rails-quotes-api/internal/mocks"
)

func TestSeedQuotes_Dataset(t *testing.T) {
	require.Len(t, SeedQuotes, 22)

	assert.Equal(t, "Sometimes you win, sometimes you learn.", SeedQuotes[0].Content)
	assert.Equal(t, "Unknown", SeedQuotes[0].Author)
	assert.Equal(t, "motivational", SeedQuotes[0].Category)

	for i, q := range SeedQuotes {
		assert.NoError(t, q.Validate(), "entry %d", i)
		assert.NotEmpty(t, q.Author, "entry %d", i)
		assert.NotEmpty(t, q.Category, "entry %d", i)
	}
}

func TestNewSeeder_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewSeeder(SeederConfig{})
	})
}

func TestSeeder_Seed(t *testing.T) {
	repo := memory.NewQuoteRepository()
	seeder := NewSeeder(SeederConfig{Repository: repo, Logger: discardLogger()})

	n, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 22, n)

	quotes, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 22)

	for i, q := range quotes {
		assert.Equal(t, SeedQuotes[i].Content, q.Content, "order preserved at %d", i)
	}
}

func TestSeeder_Seed_NotIdempotent(t *testing.T) {
	repo := memory.NewQuoteRepository()
	seeder := NewSeeder(SeederConfig{Repository: repo, Logger: discardLogger()})

	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	_, err = seeder.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 44, repo.Len())
}

func TestSeeder_Seed_StopsAtFirstFailure(t *testing.T) {
	data := []domain.QuoteAttributes{
		{Content: "one"},
		{Content: "two"},
		{Content: "three"},
	}

	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().Create(mock.Anything, data[0]).Return(&domain.Quote{ID: 1}, nil).Once()
	repo.EXPECT().Create(mock.Anything, data[1]).Return(nil, errors.New("disk full")).Once()

	seeder := NewSeeder(SeederConfig{Repository: repo, Logger: discardLogger(), Data: data})

	n, err := seeder.Seed(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "seeding quote 1")
	assert.Contains(t, err.Error(), "disk full")
}
