package model

import (
	"testing"
	"time"
)

func TestFormatNiceDate(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"afternoon", time.Date(2026, time.October, 19, 14, 5, 0, 0, time.UTC), "19th Oct 2026, 2:05 PM"},
		{"first midnight", time.Date(2025, time.November, 1, 0, 30, 0, 0, time.UTC), "1st Nov 2025, 12:30 AM"},
		{"second noon", time.Date(2025, time.November, 2, 12, 0, 0, 0, time.UTC), "2nd Nov 2025, 12:00 PM"},
		{"twenty third", time.Date(2025, time.March, 23, 9, 7, 0, 0, time.UTC), "23rd Mar 2025, 9:07 AM"},
		{"eleventh", time.Date(2025, time.March, 11, 9, 7, 0, 0, time.UTC), "11th Mar 2025, 9:07 AM"},
		{"zero", time.Time{}, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNiceDate(tt.input); got != tt.expected {
				t.Errorf("FormatNiceDate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := FormatShortDate(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)); got != "Nov 1, 2025" {
		t.Errorf("FormatShortDate() = %q", got)
	}
	if got := FormatShortDate(time.Time{}); got != "—" {
		t.Errorf("zero FormatShortDate() = %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		zero  bool
	}{
		{"2025-11-01T10:00:00Z", false},
		{"2025-11-01T10:00:00.123456", false},
		{"2025-11-01 10:00:00", false},
		{"2025-11-01", false},
		{"", true},
		{"yesterday", true},
	}

	for _, tt := range tests {
		got := ParseTimestamp(tt.input)
		if got.IsZero() != tt.zero {
			t.Errorf("ParseTimestamp(%q) = %v, expected zero=%v", tt.input, got, tt.zero)
		}
	}
}
