package relay

import (
	"context"
	"fmt"
)

// Request carries the full prompt and generation parameters for one
// completion call.
type Request struct {
	Prompt      string
	MaxTokens   int      // upper bound on generated tokens; the only guard against unbounded output
	Stop        []string // sequences that end generation
	Echo        bool     // include the prompt in the returned text
	Temperature float64
}

// Validate checks universal constraints on Request. Backend implementations
// may apply additional backend-specific validation.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt is empty: %w", ErrValidation)
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %g: %w", r.Temperature, ErrValidation)
	}
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d: %w", r.MaxTokens, ErrValidation)
	}
	return nil
}

// Completer is a strategy pattern interface for text-completion backends.
// Complete blocks until the full generated text is available; no partial
// results are consumed by this core. Any conforming implementation is
// interchangeable.
//
// Reset discards any session or context state the backend accumulated, so
// consecutive turns are independent. Stateless backends may implement it as
// a no-op. A Completer is used sequentially by one Agent, one turn at a
// time; implementations need not be safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Reset()
}
