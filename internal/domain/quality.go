package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality is the learner's 0..5 self-assessment of recall after seeing the answer.
type Quality int

// Bounds of the quality scale.
const (
	QualityMin Quality = 0
	QualityMax Quality = 5
)

// Valid reports whether q lies on the 0..5 scale.
func (q Quality) Valid() bool {
	return q >= QualityMin && q <= QualityMax
}

// Validate returns ErrInvalidInput if q lies outside the 0..5 scale.
func (q Quality) Validate() error {
	if !q.Valid() {
		return fmt.Errorf("%w: quality must be %d..%d, got %d", ErrInvalidInput, QualityMin, QualityMax, q)
	}
	return nil
}

// ParseQuality parses a single-digit quality rating as typed by the learner.
// Surrounding whitespace is ignored; signs and leading zeros are rejected.
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: quality %q is not a single digit", ErrInvalidInput, s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: quality %q is not a number", ErrInvalidInput, s)
	}

	q := Quality(n)
	if err := q.Validate(); err != nil {
		return 0, err
	}

	return q, nil
}
