package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mpawlowski/relay/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, "llamacpp", cfg.Backend.Provider)
		assert.Equal(t, 256, cfg.Generation.MaxTokens)
		assert.Equal(t, 0.7, cfg.Generation.Temperature)
		assert.Equal(t, []string{"User:", "\nUser"}, cfg.Generation.Stop)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relay.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
backend:
  provider: gemini
  settings:
    api_key: test-key
    model: test-model
generation:
  max_tokens: 64
  temperature: 0.2
log_level: debug
`), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "gemini", cfg.Backend.Provider)
		assert.Equal(t, 64, cfg.Generation.MaxTokens)
		assert.Equal(t, 0.2, cfg.Generation.Temperature)
		assert.Equal(t, "debug", cfg.LogLevel)

		var settings config.GeminiSettings
		require.NoError(t, config.DecodeSettings(cfg.Backend.Settings, &settings))
		assert.Equal(t, "test-key", settings.APIKey)
		assert.Equal(t, "test-model", settings.Model)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("RELAY_LOG_LEVEL", "warn")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestDecodeSettings(t *testing.T) {
	t.Parallel()

	t.Run("weakly typed values convert", func(t *testing.T) {
		t.Parallel()

		var settings config.LlamaCppSettings
		err := config.DecodeSettings(map[string]any{"base_url": "http://localhost:9090"}, &settings)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9090", settings.BaseURL)
	})

	t.Run("empty input leaves defaults", func(t *testing.T) {
		t.Parallel()

		settings := config.LlamaCppSettings{BaseURL: "keep"}
		require.NoError(t, config.DecodeSettings(nil, &settings))
		assert.Equal(t, "keep", settings.BaseURL)
	})
}
