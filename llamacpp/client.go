// Package llamacpp implements relay.Completer over the llama.cpp server
// completion endpoint.
package llamacpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mpawlowski/relay"
)

const (
	defaultBaseURL = "http://127.0.0.1:8080"
	completionPath = "/completion"
)

// Interface compliance check.
var _ relay.Completer = (*Client)(nil)

// Client implements [relay.Completer] against a llama.cpp server. The server
// is prompt-in/text-out: each completion call is self-contained, so Reset is
// a no-op.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the server base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new llama.cpp [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// apiRequest is the llama.cpp completion request body. NPredict is the
// server's name for the maximum number of generated tokens.
type apiRequest struct {
	Prompt      string   `json:"prompt"`
	NPredict    int      `json:"n_predict"`
	Stop        []string `json:"stop,omitempty"`
	Temperature float64  `json:"temperature"`
	Echo        bool     `json:"echo,omitempty"`
	Stream      bool     `json:"stream"`
}

type apiResponse struct {
	Content string `json:"content"`
}

// Complete sends the prompt to the server and returns the generated text.
func (c *Client) Complete(ctx context.Context, req relay.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("llamacpp: %w", err)
	}

	body, err := json.Marshal(apiRequest{
		Prompt:      req.Prompt,
		NPredict:    req.MaxTokens,
		Stop:        req.Stop,
		Temperature: req.Temperature,
		Echo:        req.Echo,
	})
	if err != nil {
		return "", fmt.Errorf("llamacpp: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llamacpp: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("llamacpp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", httpError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("llamacpp: decode response: %w", err)
	}
	return apiResp.Content, nil
}

// Reset implements [relay.Completer]. The server holds no per-client session
// state between completion calls, so there is nothing to discard.
func (c *Client) Reset() {}

// httpError converts a non-200 response into an error, including a bounded
// snippet of the body for diagnosis.
func httpError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(snippet) == 0 {
		return fmt.Errorf("llamacpp: server returned %s", resp.Status)
	}
	return fmt.Errorf("llamacpp: server returned %s: %s", resp.Status, snippet)
}
