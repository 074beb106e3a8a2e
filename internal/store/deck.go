package store

import (
	"context"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// DeckStore defines the interface for deck persistence.
// A deck is always read and written as a whole; there are no per-card operations.
type DeckStore interface {
	// Load reads every card in the deck, in stored order.
	// Returns an error wrapping ErrDeckNotFound if the deck does not exist and
	// ErrDeckCorrupt if it cannot be parsed or a card lacks a required field.
	Load(ctx context.Context) ([]*domain.Card, error)

	// Save replaces the stored deck with cards.
	// Returns an error wrapping ErrPersistenceFailure if the write did not complete;
	// a nil error means the new content is durable.
	Save(ctx context.Context, cards []*domain.Card) error

	// Location describes where the deck is kept, for messages and logs.
	Location() string
}

// LoadOrEmpty loads the deck, treating a missing deck as empty.
// This is the behavior wanted by merge targets; review sessions call Load directly.
func LoadOrEmpty(ctx context.Context, s DeckStore) ([]*domain.Card, error) {
	cards, err := s.Load(ctx)
	if err != nil {
		if IsNotFoundError(err) {
			return []*domain.Card{}, nil
		}
		return nil, err
	}
	return cards, nil
}
