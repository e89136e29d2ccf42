package model

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// TimestampLayout is the layout created_at is persisted with.
const TimestampLayout = time.RFC3339Nano

// Now returns the current time in UTC. Replaced in tests.
var Now = func() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders t in its storage form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp converts a stored timestamp back to a time value.
// Values without an offset are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t.UTC(), nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
