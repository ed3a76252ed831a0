package gemini_test

import (
	"testing"

	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationConfig(t *testing.T) {
	t.Parallel()

	t.Run("maps generation parameters", func(t *testing.T) {
		t.Parallel()

		config := gemini.GenerationConfig(relay.Request{
			Prompt:      "hi",
			MaxTokens:   200,
			Stop:        []string{"User:", "\nUser"},
			Temperature: 0.3,
		})

		assert.Equal(t, int32(200), config.MaxOutputTokens)
		assert.Equal(t, []string{"User:", "\nUser"}, config.StopSequences)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.3, float64(*config.Temperature), 1e-6)
	})

	t.Run("zero temperature is explicit, not omitted", func(t *testing.T) {
		t.Parallel()

		config := gemini.GenerationConfig(relay.Request{Prompt: "hi", MaxTokens: 1})
		require.NotNil(t, config.Temperature)
		assert.Zero(t, *config.Temperature)
	})
}
