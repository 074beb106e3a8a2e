package card_review

import "errors"

// Common error types for review sessions
var (
	// ErrLoadDeck wraps failures to load the deck at the start of a session.
	ErrLoadDeck = errors.New("could not load deck for review")

	// ErrSaveDeck wraps failures to persist the deck at the end of a session.
	// Reviews performed during the session are lost when this is returned.
	ErrSaveDeck = errors.New("could not save reviewed deck")
)
