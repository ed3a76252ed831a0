package relay_test

import (
	"testing"

	"github.com/mpawlowski/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := relay.Request{
		Prompt:      "hello",
		MaxTokens:   256,
		Temperature: 0.7,
	}

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid.Validate())
	})

	t.Run("empty prompt", func(t *testing.T) {
		t.Parallel()
		req := valid
		req.Prompt = ""
		assert.ErrorIs(t, req.Validate(), relay.ErrValidation)
	})

	t.Run("temperature out of range", func(t *testing.T) {
		t.Parallel()
		for _, temp := range []float64{-0.1, 2.1} {
			req := valid
			req.Temperature = temp
			assert.ErrorIs(t, req.Validate(), relay.ErrValidation)
		}
	})

	t.Run("non-positive max tokens", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{0, -5} {
			req := valid
			req.MaxTokens = n
			assert.ErrorIs(t, req.Validate(), relay.ErrValidation)
		}
	})
}
