package domain

import (
	"errors"
	"fmt"
	"time"
)

// DefaultEaseFactor is the ease factor assigned to cards that have never been reviewed.
const DefaultEaseFactor = 2.5

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardQuestionEmpty is returned when a card has no question text.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardAnswerEmpty is returned when a card has no answer text.
	ErrCardAnswerEmpty = errors.New("card answer cannot be empty")

	// ErrInvalidInterval is returned when a card's interval is negative.
	ErrInvalidInterval = errors.New("interval must be greater than or equal to 0")

	// ErrInvalidRepetition is returned when a card's repetition count is negative.
	ErrInvalidRepetition = errors.New("repetition must be greater than or equal to 0")

	// ErrInvalidEaseFactor is returned when a card's ease factor is not positive.
	ErrInvalidEaseFactor = errors.New("ease factor must be greater than 0")
)

// Card is a question/answer pair together with its SM-2 scheduling state.
//
// Due holds an ISO calendar date (YYYY-MM-DD). A nil Due means the card is
// due immediately: it has never been reviewed or was forced due. Due is kept
// as the raw string so a malformed value survives a load/save round trip.
type Card struct {
	ID           string  `json:"id"`
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	IntervalDays int     `json:"interval_days"` // Days until next review after the last success
	Repetition   int     `json:"repetition"`    // Consecutive successful reviews since last reset
	EaseFactor   float64 `json:"ease_factor"`   // Interval growth multiplier, never below the SRS floor
	Due          *string `json:"due"`
}

// NewCard creates an unscheduled card with default scheduling state.
// Returns an error if validation fails.
func NewCard(id, question, answer string) (*Card, error) {
	card := &Card{
		ID:         id,
		Question:   question,
		Answer:     answer,
		EaseFactor: DefaultEaseFactor,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}

	if c.Question == "" {
		return ErrCardQuestionEmpty
	}

	if c.Answer == "" {
		return ErrCardAnswerEmpty
	}

	if c.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	if c.Repetition < 0 {
		return ErrInvalidRepetition
	}

	if c.EaseFactor <= 0 {
		return ErrInvalidEaseFactor
	}

	return nil
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	clone := *c
	if c.Due != nil {
		due := *c.Due
		clone.Due = &due
	}
	return &clone
}

// DueDate parses the card's due date.
// The boolean result is false when the card has no due date.
// A due date that is present but malformed yields an error wrapping ErrInvalidFormat.
func (c *Card) DueDate() (time.Time, bool, error) {
	if c.Due == nil {
		return time.Time{}, false, nil
	}

	due, err := ParseDate(*c.Due)
	if err != nil {
		return time.Time{}, true, err
	}

	return due, true, nil
}

// SetDue records the given calendar date as the card's due date.
func (c *Card) SetDue(date time.Time) {
	formatted := FormatDate(date)
	c.Due = &formatted
}

// ClearDue forces the card due immediately.
func (c *Card) ClearDue() {
	c.Due = nil
}

// String implements fmt.Stringer for log output.
func (c *Card) String() string {
	due := "now"
	if c.Due != nil {
		due = *c.Due
	}
	return fmt.Sprintf("card %s (I=%d R=%d EF=%.2f due=%s)",
		c.ID, c.IntervalDays, c.Repetition, c.EaseFactor, due)
}
