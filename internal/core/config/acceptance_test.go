package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

// TestAcceptanceCriteria verifies configuration precedence and the compiled-in rules guarantee.
func TestAcceptanceCriteria(t *testing.T) {
	t.Run("AC1: Config file values are loaded", func(t *testing.T) {
		path := writeConfig(t, `engine:
  log_level: warn
  log_format: text
  parallel_threshold: 10000
  max_workers: 8
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, &EngineConfig{
			LogLevel:          "warn",
			LogFormat:         "text",
			ParallelThreshold: 10000,
			MaxWorkers:        8,
		}, cfg)
	})

	t.Run("AC2: Config file with item rules rejected with clear error", func(t *testing.T) {
		path := writeConfig(t, `engine:
  log_level: info
rules:
  Aged Brie:
    sell_by_rate_decrease: 1
`)
		_, err := LoadConfig(path)
		require.Error(t, err)
		require.Equal(t, `item rules not allowed in config files (found "rules"; rules are compiled in)`, err.Error())
	})

	t.Run("AC3: Environment overrides config file", func(t *testing.T) {
		os.Setenv("GR_ENGINE_MAX_WORKERS", "2")
		defer os.Unsetenv("GR_ENGINE_MAX_WORKERS")

		path := writeConfig(t, `engine:
  max_workers: 16
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		// Environment variable (2) should override config file (16)
		require.Equal(t, 2, cfg.MaxWorkers)
	})
}
