package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used for due dates.
const DateLayout = "2006-01-02"

// CalendarDate returns midnight UTC of t's calendar day, as observed in t's location.
// Scheduling works on whole days, so every date the domain stores or compares
// goes through this function first.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after date.
func AddDays(date time.Time, n int) time.Time {
	return CalendarDate(date).AddDate(0, 0, n)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return CalendarDate(date).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidFormat, value, err)
	}
	return parsed, nil
}
