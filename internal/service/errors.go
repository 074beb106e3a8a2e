package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is.
var (
	// ErrImportFailed indicates that cards could not be imported into a deck.
	// The wrapped error names the stage that failed.
	ErrImportFailed = errors.New("import failed")
)
