package srs

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewDay = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestCard(t *testing.T, interval, repetition int, ef float64) *domain.Card {
	t.Helper()
	card, err := domain.NewCard("card-1", "What is SM-2?", "A spaced repetition algorithm")
	require.NoError(t, err)
	card.IntervalDays = interval
	card.Repetition = repetition
	card.EaseFactor = ef
	return card
}

func TestNewDefaultService(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()
	require.NotNil(t, service)

	defaultService, ok := service.(*defaultService)
	require.True(t, ok, "Expected *defaultService type")
	assert.NotNil(t, defaultService.params)
	assert.Equal(t, *NewDefaultParams(), service.Params())
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel()

	_, err := NewServiceWithParams(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewServiceWithParams(&Params{MinEaseFactor: 1.3})
	assert.ErrorIs(t, err, domain.ErrValidation)

	service, err := NewServiceWithParams(NewDefaultParams())
	require.NoError(t, err)
	assert.NotNil(t, service)
}

func TestCalculateNextReview_RejectsInvalidInput(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	card := newTestCard(t, 0, 0, 2.5)

	for _, q := range []domain.Quality{-1, 6, 42} {
		next, err := service.CalculateNextReview(card, q, reviewDay)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quality %d", q)
		assert.Nil(t, next)
	}

	_, err := service.CalculateNextReview(nil, 4, reviewDay)
	assert.ErrorIs(t, err, ErrNilCard)
}

func TestCalculateNextReview_Failure(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	for q := domain.Quality(0); q < 3; q++ {
		card := newTestCard(t, 15, 3, 2.2)
		next, err := service.CalculateNextReview(card, q, reviewDay)
		require.NoError(t, err)

		assert.Equal(t, 0, next.Repetition, "quality %d", q)
		assert.Equal(t, 1, next.IntervalDays, "quality %d", q)
		assert.Equal(t, 2.2, next.EaseFactor, "quality %d", q)
		assert.Equal(t, "2024-01-02", *next.Due)
	}
}

func TestCalculateNextReview_Success(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	testCases := []struct {
		name               string
		interval           int
		repetition         int
		expectedInterval   int
		expectedRepetition int
	}{
		{"first success", 0, 0, 1, 1},
		{"second success", 1, 1, 6, 2},
		{"third success", 6, 2, 15, 3},
		{"fourth success", 15, 3, 38, 4}, // 37.5 → 38
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for q := domain.Quality(3); q <= 5; q++ {
				card := newTestCard(t, tc.interval, tc.repetition, 2.5)
				next, err := service.CalculateNextReview(card, q, reviewDay)
				require.NoError(t, err)

				assert.Equal(t, tc.expectedInterval, next.IntervalDays, "quality %d", q)
				assert.Equal(t, tc.expectedRepetition, next.Repetition, "quality %d", q)
				assert.Equal(t, domain.FormatDate(domain.AddDays(reviewDay, tc.expectedInterval)), *next.Due)
			}
		})
	}
}

// A card with interval 6, repetition 2 and the default ease factor, rated 4
// on 2024-01-01, lands on 2024-01-16.
func TestCalculateNextReview_Scenario(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	card := newTestCard(t, 6, 2, 2.5)

	next, err := service.CalculateNextReview(card, 4, reviewDay)
	require.NoError(t, err)

	assert.Equal(t, 15, next.IntervalDays)
	assert.Equal(t, 3, next.Repetition)
	assert.InDelta(t, 2.5, next.EaseFactor, 1e-9, "quality 4 leaves the ease factor unchanged")
	assert.Equal(t, "2024-01-16", *next.Due)

	next, err = service.CalculateNextReview(card, 5, reviewDay)
	require.NoError(t, err)
	assert.InDelta(t, 2.6, next.EaseFactor, 1e-9)
}

func TestCalculateNextReview_RandomSequences(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	rng := rand.New(rand.NewSource(20240101))

	for run := 0; run < 200; run++ {
		card := newTestCard(t, 0, 0, 2.5)
		today := reviewDay

		for step := 0; step < 50; step++ {
			q := domain.Quality(rng.Intn(6))
			prior := card.Clone()

			next, err := service.CalculateNextReview(card, q, today)
			require.NoError(t, err)

			require.GreaterOrEqual(t, next.EaseFactor, 1.3, "ease factor fell below floor")
			require.GreaterOrEqual(t, next.IntervalDays, 1, "interval below one day")
			require.Equal(t, domain.FormatDate(domain.AddDays(today, next.IntervalDays)), *next.Due)

			if q < 3 {
				require.Equal(t, 0, next.Repetition)
				require.Equal(t, prior.EaseFactor, next.EaseFactor)
			} else {
				require.Equal(t, prior.Repetition+1, next.Repetition)
				if prior.Repetition >= 2 {
					want := int(math.RoundToEven(float64(prior.IntervalDays) * prior.EaseFactor))
					require.Equal(t, want, next.IntervalDays)
				}
			}

			card = next
			today = domain.AddDays(today, rng.Intn(next.IntervalDays+1))
		}
	}
}
