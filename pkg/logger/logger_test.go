package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsAreWritten(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.DebugLevel)

	l.Warn("classified",
		String("mode", "numeric"),
		Int("warnings", 2),
		Float64("deviation_pct", 3.5),
		Bool("matched", true),
		Error(errors.New("boom")),
	)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "classified", line["message"])
	assert.Equal(t, "numeric", line["mode"])
	assert.Equal(t, 2.0, line["warnings"])
	assert.Equal(t, 3.5, line["deviation_pct"])
	assert.Equal(t, true, line["matched"])
	assert.Equal(t, "boom", line["error"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.WarnLevel)
	l.Info("hidden")
	assert.Zero(t, buf.Len())
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.InfoLevel).With(String("session", "abc"))
	l.Info("hello")
	assert.Contains(t, buf.String(), `"session":"abc"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}
