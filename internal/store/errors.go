package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all deck store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDeckNotFound indicates that the deck document does not exist.
	// A review session treats this as fatal; an import treats it as an empty deck.
	ErrDeckNotFound = fmt.Errorf("%w: deck", ErrNotFound)

	// ErrDeckCorrupt is returned when a deck document exists but cannot be
	// parsed, or when a card record is missing a required field.
	ErrDeckCorrupt = errors.New("deck is corrupt")

	// ErrPersistenceFailure is returned when a deck could not be written.
	// The previous deck contents are left in place when this happens.
	ErrPersistenceFailure = errors.New("deck could not be saved")

	// ErrDuplicate is returned when a deck contains two cards with the same ID.
	// Stores report it wrapped together with ErrDeckCorrupt.
	ErrDuplicate = errors.New("duplicate card id")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Operation string // The operation that failed (e.g., "load", "save")
	Path      string // Location of the deck the operation ran against
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s deck %s failed: %s: %v", e.Operation, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s deck %s failed: %s", e.Operation, e.Path, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given operation, path, message, and wrapped error.
func NewStoreError(operation, path, message string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}
