package model

import (
	"fmt"
	"strings"
	"time"
)

// DashPlaceholder is shown where a value is unknown
const DashPlaceholder = "—"

// FormatNiceDate renders a timestamp as "19th Oct 2026, 2:05 PM", or a dash
// for the zero time
func FormatNiceDate(t time.Time) string {
	if t.IsZero() {
		return DashPlaceholder
	}

	day := t.Day()
	hour := t.Hour()
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d%s %s %d, %d:%02d %s",
		day, ordinalSuffix(day), t.Format("Jan"), t.Year(), hour, t.Minute(), ampm)
}

// FormatShortDate renders a date as "Nov 1, 2025", or a dash for the zero time
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return DashPlaceholder
	}
	return t.Format("Jan 2, 2006")
}

func ordinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// ParseTimestamp accepts the timestamp layouts the backend emits and returns
// the zero time for anything else
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02 15:04:05.999999-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
