package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate cards from text")

	// ErrNoSource is returned when the source path holds no readable notes
	ErrNoSource = errors.New("no note files found")
)
