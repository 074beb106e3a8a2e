// Package store defines the deck persistence boundary and the operations
// that work on whole decks regardless of where they are kept. Concrete
// storage lives under internal/platform.
package store
