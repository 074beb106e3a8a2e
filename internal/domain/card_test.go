package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card, err := NewCard("abc123", "What is Go?", "A programming language")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID != "abc123" {
		t.Errorf("Expected ID abc123, got %s", card.ID)
	}

	if card.IntervalDays != 0 || card.Repetition != 0 {
		t.Errorf("Expected zero interval and repetition, got %d and %d", card.IntervalDays, card.Repetition)
	}

	if card.EaseFactor != DefaultEaseFactor {
		t.Errorf("Expected ease factor %f, got %f", DefaultEaseFactor, card.EaseFactor)
	}

	if card.Due != nil {
		t.Errorf("Expected nil due date, got %v", *card.Due)
	}

	// Test missing fields
	_, err = NewCard("", "q", "a")
	if err != ErrCardIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardIDEmpty, err)
	}

	_, err = NewCard("id", "", "a")
	if err != ErrCardQuestionEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardQuestionEmpty, err)
	}

	_, err = NewCard("id", "q", "")
	if err != ErrCardAnswerEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardAnswerEmpty, err)
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := Card{ID: "id", Question: "q", Answer: "a", EaseFactor: 2.5}

	testCases := []struct {
		name     string
		modify   func(c *Card)
		expected error
	}{
		{"valid card", func(c *Card) {}, nil},
		{"negative interval", func(c *Card) { c.IntervalDays = -1 }, ErrInvalidInterval},
		{"negative repetition", func(c *Card) { c.Repetition = -1 }, ErrInvalidRepetition},
		{"zero ease factor", func(c *Card) { c.EaseFactor = 0 }, ErrInvalidEaseFactor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid
			tc.modify(&card)
			if err := card.Validate(); err != tc.expected {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestCardClone(t *testing.T) {
	t.Parallel() // Enable parallel execution
	card, _ := NewCard("id", "q", "a")
	card.SetDue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	clone := card.Clone()
	clone.SetDue(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clone.Repetition = 4

	if *card.Due != "2024-01-01" {
		t.Errorf("Clone shares due date with original: %s", *card.Due)
	}
	if card.Repetition != 0 {
		t.Errorf("Clone shares repetition with original: %d", card.Repetition)
	}
}

func TestCardDueDate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	card, _ := NewCard("id", "q", "a")

	_, ok, err := card.DueDate()
	if ok || err != nil {
		t.Errorf("Expected no due date and no error, got ok=%v err=%v", ok, err)
	}

	card.SetDue(time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC))
	due, ok, err := card.DueDate()
	if !ok || err != nil {
		t.Fatalf("Expected a due date, got ok=%v err=%v", ok, err)
	}
	if !due.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2024-03-09, got %v", due)
	}

	garbage := "next tuesday"
	card.Due = &garbage
	_, ok, err = card.DueDate()
	if !ok || !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for malformed due date, got ok=%v err=%v", ok, err)
	}

	card.ClearDue()
	if card.Due != nil {
		t.Error("Expected ClearDue to remove the due date")
	}
}
