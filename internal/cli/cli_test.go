package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional scenario path", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"scenarios/baseline.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "scenarios/baseline.hcl", cfg.ScenarioPath)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("flags win over defaults", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{
			"-s", "baseline.hcl",
			"-overrides", "sweep.yaml",
			"-columns", "economy.gdp, climate.temperature_anomaly",
			"-log-format", "text",
			"-log-level", "debug",
			"-track-reads",
		}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "baseline.hcl", cfg.ScenarioPath)
		assert.Equal(t, "sweep.yaml", cfg.OverridesPath)
		assert.Equal(t, []string{"economy.gdp", "climate.temperature_anomaly"}, cfg.Columns)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.TrackReads)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-log-format", "xml", "baseline.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
