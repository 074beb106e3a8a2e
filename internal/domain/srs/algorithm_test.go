package srs

import (
	"testing"
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
)

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		current  int
		rep      int
		ef       float64
		passed   bool
		expected int
	}{
		{
			name:     "Failure resets to one day",
			current:  40,
			rep:      5,
			ef:       2.5,
			passed:   false,
			expected: 1,
		},
		{
			name:     "First success",
			current:  0,
			rep:      0,
			ef:       2.5,
			passed:   true,
			expected: 1,
		},
		{
			name:     "Second success",
			current:  1,
			rep:      1,
			ef:       2.5,
			passed:   true,
			expected: 6,
		},
		{
			name:     "Later success multiplies by ease factor",
			current:  6,
			rep:      2,
			ef:       2.5,
			passed:   true,
			expected: 15, // 6 * 2.5 = 15
		},
		{
			name:     "Half rounds down to even",
			current:  5,
			rep:      3,
			ef:       2.5,
			passed:   true,
			expected: 12, // 12.5 → 12
		},
		{
			name:     "Half rounds up to even",
			current:  3,
			rep:      3,
			ef:       2.5,
			passed:   true,
			expected: 8, // 7.5 → 8
		},
		{
			name:     "Zero interval with high repetition never yields zero",
			current:  0,
			rep:      4,
			ef:       2.5,
			passed:   true,
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewInterval(tc.current, tc.rep, tc.ef, tc.passed)
			if got != tc.expected {
				t.Errorf("Expected interval %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		quality  domain.Quality
		expected float64
	}{
		{"Quality 5 increases ease factor", 2.5, 5, 2.6},
		{"Quality 4 leaves ease factor unchanged", 2.5, 4, 2.5},
		{"Quality 3 decreases ease factor", 2.5, 3, 2.36},
		{"Minimum ease factor is enforced", 1.35, 3, 1.3},
		{"Ease factor already at floor stays there", 1.3, 3, 1.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newEF := calculateNewEaseFactor(tc.current, tc.quality, params)

			// Use a small epsilon for float comparison
			epsilon := 0.001
			if newEF < tc.expected-epsilon || newEF > tc.expected+epsilon {
				t.Errorf("Expected ease factor %f, got %f", tc.expected, newEF)
			}
		})
	}
}

func TestCalculateNextCard(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()
	today := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	card, err := domain.NewCard("c1", "q", "a")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	updated := calculateNextCard(card, 4, today, params)

	if updated == card {
		t.Fatal("calculateNextCard returned the same object, not a new one")
	}
	if card.Repetition != 0 || card.Due != nil {
		t.Errorf("Original card was modified: %v", card)
	}
	if updated.Repetition != 1 || updated.IntervalDays != 1 {
		t.Errorf("Expected R=1 I=1, got R=%d I=%d", updated.Repetition, updated.IntervalDays)
	}
	if updated.Due == nil || *updated.Due != "2024-01-02" {
		t.Errorf("Expected due 2024-01-02, got %v", updated.Due)
	}

	// A failure keeps the ease factor and resets the run
	updated.EaseFactor = 2.1
	updated.Repetition = 5
	updated.IntervalDays = 30
	failed := calculateNextCard(updated, 2, today, params)
	if failed.Repetition != 0 || failed.IntervalDays != 1 {
		t.Errorf("Expected R=0 I=1 after failure, got R=%d I=%d", failed.Repetition, failed.IntervalDays)
	}
	if failed.EaseFactor != 2.1 {
		t.Errorf("Expected ease factor unchanged at 2.1, got %f", failed.EaseFactor)
	}
}

func TestCalculateNextCard_FailingQualitiesResetRepetition(t *testing.T) {
	t.Parallel()
	params := &Params{MinEaseFactor: 1.5, InitialEaseFactor: 2.5}
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	card, err := domain.NewCard("c1", "q", "a")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	card.IntervalDays = 6
	card.Repetition = 2
	card.EaseFactor = 1.5

	for q := domain.QualityMin; q < PassingQuality; q++ {
		next := calculateNextCard(card, q, today, params)
		if next.Repetition != 0 || next.IntervalDays != 1 {
			t.Errorf("quality %d: expected R=0 I=1, got R=%d I=%d", q, next.Repetition, next.IntervalDays)
		}
		if next.EaseFactor != 1.5 {
			t.Errorf("quality %d: expected ease factor unchanged, got %f", q, next.EaseFactor)
		}
	}

	// A raised floor clamps successful reviews as well
	next := calculateNextCard(card, 3, today, params)
	if next.EaseFactor != 1.5 {
		t.Errorf("Expected ease factor clamped to 1.5, got %f", next.EaseFactor)
	}
}
