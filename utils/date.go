package utils

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")

// ParseCalendarDate reads a plain calendar date. A full timestamp is
// accepted but only its date portion is used, so a zone offset can never
// shift the stored day.
func ParseCalendarDate(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseCalendarDatePtr is ParseCalendarDate for optional DTO fields; nil
// and empty map to nil.
func ParseCalendarDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseCalendarDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatCalendarDate renders the date portion only.
func FormatCalendarDate(t time.Time) string {
	return t.Format("2006-01-02")
}
