package service

import (
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
	"github.com/phrazzld/scry-deck/internal/domain/srs"
)

// DeckStats summarizes the schedule of a deck on a given day.
type DeckStats struct {
	Total          int
	Due            int     // Cards due today, including new and malformed ones
	New            int     // Cards that have never been scheduled
	Malformed      int     // Cards whose due date cannot be parsed
	Learning       int     // Scheduled cards with fewer than two consecutive successes
	Mature         int     // Scheduled cards with two or more consecutive successes
	MeanEaseFactor float64 // Zero for an empty deck
	NextDue        string  // Earliest future due date, empty if none
}

// Summarize computes DeckStats for cards as of today's calendar date.
func Summarize(cards []*domain.Card, today time.Time) DeckStats {
	stats := DeckStats{Total: len(cards)}
	today = domain.CalendarDate(today)

	var easeSum float64
	var nextDue time.Time

	for _, card := range cards {
		easeSum += card.EaseFactor

		if srs.IsDue(card, today) {
			stats.Due++
		}

		due, ok, err := card.DueDate()
		switch {
		case !ok:
			stats.New++
			continue
		case err != nil:
			stats.Malformed++
			continue
		}

		if card.Repetition >= 2 {
			stats.Mature++
		} else {
			stats.Learning++
		}

		if due.After(today) && (nextDue.IsZero() || due.Before(nextDue)) {
			nextDue = due
		}
	}

	if stats.Total > 0 {
		stats.MeanEaseFactor = easeSum / float64(stats.Total)
	}
	if !nextDue.IsZero() {
		stats.NextDue = domain.FormatDate(nextDue)
	}

	return stats
}
