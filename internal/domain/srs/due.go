package srs

import (
	"time"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// IsDue reports whether card should be presented on today's calendar date.
//
// Cards without a due date are due. Cards whose due date cannot be parsed
// are also due, so a malformed record is never hidden from review.
func IsDue(card *domain.Card, today time.Time) bool {
	due, ok, err := card.DueDate()
	if !ok || err != nil {
		return true
	}
	return !due.After(domain.CalendarDate(today))
}

// DueToday returns, in deck order, every card due on today's calendar date.
// The returned slice shares card pointers with cards.
func DueToday(cards []*domain.Card, today time.Time) []*domain.Card {
	due := make([]*domain.Card, 0, len(cards))
	for _, card := range cards {
		if IsDue(card, today) {
			due = append(due, card)
		}
	}
	return due
}
