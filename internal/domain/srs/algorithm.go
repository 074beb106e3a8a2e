package srs

import (
	"math"
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease adjustment for a successful review.
//
// The adjustment is 0.1 - (5-q)*(0.08 + (5-q)*0.02): quality 5 adds 0.1,
// quality 4 leaves the factor unchanged and quality 3 subtracts 0.14.
// The result is clamped to params.MinEaseFactor. Failed reviews never reach
// this function; SM-2 leaves the ease factor alone on failure.
func calculateNewEaseFactor(currentEF float64, quality domain.Quality, params *Params) float64 {
	miss := float64(domain.QualityMax - quality)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next interval in days.
//
// Parameters:
//   - currentInterval: the interval before this review
//   - repetition: consecutive successes before this review
//   - easeFactor: the ease factor before this review
//   - passed: whether the review met PassingQuality
//
// Algorithm behavior:
//   - Failure: 1 day
//   - First success in a run: 1 day
//   - Second success in a run: 6 days
//   - Later successes: currentInterval * easeFactor, rounded half to even
//
// Half-to-even rounding is pinned so long interval sequences are reproducible
// across implementations: 2.5 rounds to 2, 3.5 rounds to 4.
// The result is never below one day.
func calculateNewInterval(currentInterval, repetition int, easeFactor float64, passed bool) int {
	var interval int
	switch {
	case !passed:
		interval = failureInterval
	case repetition == 0:
		interval = firstInterval
	case repetition == 1:
		interval = secondInterval
	default:
		interval = int(math.RoundToEven(float64(currentInterval) * easeFactor))
	}

	if interval < 1 {
		interval = 1
	}

	return interval
}

// calculateNextCard returns a copy of card advanced by one review.
//
// The original card is left untouched. The interval is computed from the
// pre-review ease factor; the ease factor is then updated for the next review.
// The due date is today plus the new interval in whole calendar days.
func calculateNextCard(card *domain.Card, quality domain.Quality, today time.Time, params *Params) *domain.Card {
	next := card.Clone()
	passed := quality >= PassingQuality

	next.IntervalDays = calculateNewInterval(card.IntervalDays, card.Repetition, card.EaseFactor, passed)

	if passed {
		next.Repetition = card.Repetition + 1
		next.EaseFactor = calculateNewEaseFactor(card.EaseFactor, quality, params)
	} else {
		next.Repetition = 0
	}

	next.SetDue(domain.AddDays(today, next.IntervalDays))

	return next
}
