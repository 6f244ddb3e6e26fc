package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KCScope/internal/domain/scenario"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	assert.True(t, c.Server.CORS)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.Equal(t, scenario.DefaultDistanceThresholds, c.Classifier.Distance)
	assert.Equal(t, 12*time.Hour, c.Session.IdleTTL)
	assert.False(t, c.Events.Enabled)
	assert.NoError(t, c.Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
environment: production
server:
  port: 9090
  cors: false
classifier:
  distance:
    large: 8
    moderate: 3
logging:
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.False(t, c.Server.CORS)
	assert.Equal(t, scenario.DistanceThresholds{Large: 8, Moderate: 3}, c.Classifier.Distance)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 10*time.Second, c.Server.WriteTimeout)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"inverted distance", "classifier:\n  distance:\n    large: 1\n    moderate: 2\n"},
		{"events without brokers", "events:\n  enabled: true\n  brokers: []\n"},
		{"ratelimit without rps", "ratelimit:\n  enabled: true\n  rps: 0\n"},
		{"malformed", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	env := map[string]string{
		"KCSCOPE_PORT":      "7070",
		"KCSCOPE_LOG_LEVEL": "debug",
		"EVENTS_ENABLED":    "true",
		"EVENTS_BROKERS":    "k1:9092,k2:9092",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	require.NoError(t, c.applyEnv(lookup))

	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Events.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Events.Brokers)
	assert.NoError(t, c.Validate())

	env["KCSCOPE_PORT"] = "eighty"
	assert.Error(t, c.applyEnv(lookup))
}

func TestLoadProjectConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, scenario.DefaultDistanceThresholds, c.Classifier.Distance)
	assert.Equal(t, []string{"localhost:9092"}, c.Events.Brokers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
