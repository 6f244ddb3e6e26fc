package util

import (
	"strconv"
	"time"
)

// DisplayLayout is how evaluation timestamps are shown to people.
const DisplayLayout = "2006-01-02 15:04:05"

// ParseTime tries RFC3339, RFC3339Nano, the display layout, and unix seconds.
// Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(DisplayLayout, s, time.Local); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// FormatTimestamp renders t in DisplayLayout, local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(DisplayLayout)
}
