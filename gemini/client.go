// Package gemini implements relay.Completer over the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"github.com/mpawlowski/relay"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Interface compliance check.
var _ relay.Completer = (*Client)(nil)

// Client implements [relay.Completer] for the Google Gemini API. The full
// prompt is sent as a single user content; no chat history is kept, so Reset
// is a no-op.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Complete sends the prompt and returns the full generated text. The API has
// no echo mode, so when req.Echo is set the prompt is prepended to the
// output to preserve the contract.
func (c *Client) Complete(ctx context.Context, req relay.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	}}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, GenerationConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := resp.Text()
	if req.Echo {
		text = req.Prompt + text
	}
	return text, nil
}

// Reset implements [relay.Completer]. The client sends the full prompt on
// every call and accumulates no session state.
func (c *Client) Reset() {}

// GenerationConfig converts a relay Request into a genai generation config.
// Exported for testing.
func GenerationConfig(req relay.Request) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	return &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		StopSequences:   req.Stop,
		Temperature:     &temp,
	}
}
