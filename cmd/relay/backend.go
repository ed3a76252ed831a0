package main

import (
	"context"
	"fmt"

	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/config"
	"github.com/mpawlowski/relay/gemini"
	"github.com/mpawlowski/relay/llamacpp"
)

// resolveBackend constructs the completion backend selected by the
// configuration. Env var values are passed in as parameters — env is only
// read in run().
func resolveBackend(ctx context.Context, cfg config.BackendConfig, geminiEnvKey string) (relay.Completer, error) {
	switch cfg.Provider {
	case "llamacpp":
		var settings config.LlamaCppSettings
		if err := config.DecodeSettings(cfg.Settings, &settings); err != nil {
			return nil, fmt.Errorf("llamacpp settings: %w", err)
		}
		var opts []llamacpp.Option
		if settings.BaseURL != "" {
			opts = append(opts, llamacpp.WithBaseURL(settings.BaseURL))
		}
		return llamacpp.New(opts...), nil

	case "gemini":
		var settings config.GeminiSettings
		if err := config.DecodeSettings(cfg.Settings, &settings); err != nil {
			return nil, fmt.Errorf("gemini settings: %w", err)
		}
		key := settings.APIKey
		if key == "" {
			key = geminiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("no API key found for gemini: set backend.settings.api_key or GEMINI_API_KEY")
		}
		var opts []gemini.Option
		if settings.Model != "" {
			opts = append(opts, gemini.WithModel(settings.Model))
		}
		client, err := gemini.New(ctx, key, opts...)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unknown provider %q (want llamacpp or gemini)", cfg.Provider)
	}
}
