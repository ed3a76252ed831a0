// Package config loads relay configuration from a file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the top-level relay configuration.
type Config struct {
	Backend    BackendConfig    `mapstructure:"backend"`
	Generation GenerationConfig `mapstructure:"generation"`
	LogLevel   string           `mapstructure:"log_level"`
	LogFormat  string           `mapstructure:"log_format"`
}

// BackendConfig selects and configures the completion backend. Settings is a
// free-form map decoded by the selected backend (see DecodeSettings).
type BackendConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

// GenerationConfig holds the fixed per-turn generation parameters.
type GenerationConfig struct {
	MaxTokens   int      `mapstructure:"max_tokens"`
	Temperature float64  `mapstructure:"temperature"`
	Stop        []string `mapstructure:"stop"`
}

// LlamaCppSettings are the backend settings for provider "llamacpp".
type LlamaCppSettings struct {
	BaseURL string `mapstructure:"base_url"`
}

// GeminiSettings are the backend settings for provider "gemini". APIKey
// defaults to the GEMINI_API_KEY environment variable when unset.
type GeminiSettings struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Load reads configuration from the given file path. An empty path loads
// defaults only. Environment variables prefixed RELAY_ override file values
// (RELAY_BACKEND_PROVIDER, RELAY_LOG_LEVEL, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("backend.provider", "llamacpp")
	v.SetDefault("generation.max_tokens", 256)
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.stop", []string{"User:", "\nUser"})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// DecodeSettings decodes a free-form backend settings map into a typed
// struct. Input is weakly typed so numeric and boolean strings from the
// environment convert cleanly.
func DecodeSettings(input map[string]any, out any) error {
	if len(input) == 0 {
		return nil
	}
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return nil
}
