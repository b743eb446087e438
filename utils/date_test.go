package utils

import "testing"

func TestParseCalendarDate(t *testing.T) {
	got, err := ParseCalendarDate("2024-05-01")
	if err != nil {
		t.Fatalf("ParseCalendarDate failed: %v", err)
	}
	if FormatCalendarDate(got) != "2024-05-01" {
		t.Fatalf("date mangled: %v", got)
	}
}

func TestParseCalendarDateIgnoresTimePortion(t *testing.T) {
	// A UTC midnight timestamp viewed from a western zone is the previous
	// evening; slicing the date prefix keeps the calendar day stable.
	got, err := ParseCalendarDate("2024-05-01T00:00:00Z")
	if err != nil {
		t.Fatalf("ParseCalendarDate failed: %v", err)
	}
	if FormatCalendarDate(got) != "2024-05-01" {
		t.Fatalf("timestamp shifted the day: %v", got)
	}
}

func TestParseCalendarDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"garbage", "2024-13-99", "01/05/2024"} {
		if _, err := ParseCalendarDate(s); err == nil {
			t.Fatalf("ParseCalendarDate(%q) accepted", s)
		}
	}
}

func TestParseCalendarDatePtr(t *testing.T) {
	if got, err := ParseCalendarDatePtr(nil); err != nil || got != nil {
		t.Fatalf("nil input: %v %v", got, err)
	}
	empty := ""
	if got, err := ParseCalendarDatePtr(&empty); err != nil || got != nil {
		t.Fatalf("empty input: %v %v", got, err)
	}
	s := "2024-05-01"
	got, err := ParseCalendarDatePtr(&s)
	if err != nil || got == nil || FormatCalendarDate(*got) != "2024-05-01" {
		t.Fatalf("value input: %v %v", got, err)
	}
}
