package util

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	require.True(t, ok)
	assert.Equal(t, s, got.UTC().Format(time.RFC3339))
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	require.True(t, ok)
	assert.Equal(t, ts, got.Unix())
}

func TestParseTimeDisplayLayout(t *testing.T) {
	got, ok := ParseTime("2024-10-10 09:30:00")
	require.True(t, ok)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	_, ok := ParseTime("yesterday")
	assert.False(t, ok)
	_, ok = ParseTime("")
	assert.False(t, ok)
}

func TestFormatTimestampRoundTrips(t *testing.T) {
	in := time.Date(2024, 10, 10, 9, 30, 15, 0, time.Local)
	s := FormatTimestamp(in)
	got, ok := ParseTime(s)
	require.True(t, ok)
	assert.True(t, got.Equal(in))
}
