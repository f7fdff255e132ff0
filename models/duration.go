package models

import (
	"math"
	"time"
)

// DefaultDurationMinutes applies when start or end is missing or end is not after start.
const DefaultDurationMinutes = 60

var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts datetime-local values as well as RFC 3339.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DurationMinutes derives a session length from its start and end timestamps.
func DurationMinutes(start, end string) int {
	s, okStart := ParseTimestamp(start)
	e, okEnd := ParseTimestamp(end)
	if !okStart || !okEnd || !e.After(s) {
		return DefaultDurationMinutes
	}
	return int(math.Round(e.Sub(s).Minutes()))
}
