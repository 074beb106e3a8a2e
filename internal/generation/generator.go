package generation

import (
	"context"
	"crypto/sha1" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// cardIDLength is the number of hex characters kept from the content hash.
const cardIDLength = 12

// Generator defines the interface for producing flashcards from note text.
type Generator interface {
	// GenerateCards extracts cards from the given note text.
	// The returned cards carry default scheduling state (interval 0,
	// repetition 0, ease factor 2.5, no due date) and content-derived IDs.
	GenerateCards(ctx context.Context, text string) ([]*domain.Card, error)
}

// CardID derives a stable card identity from its question and answer.
// It is the first 12 hex characters of the SHA-1 of question + "\n\n" + answer,
// which keeps IDs compatible with decks written by earlier tooling.
func CardID(question, answer string) string {
	sum := sha1.Sum([]byte(question + "\n\n" + answer)) //nolint:gosec
	return hex.EncodeToString(sum[:])[:cardIDLength]
}

// NewCard builds an unscheduled card with a content-derived ID.
func NewCard(question, answer string) (*domain.Card, error) {
	return domain.NewCard(CardID(question, answer), question, answer)
}
