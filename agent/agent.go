// Package agent orchestrates a single tool-calling turn between a Completer
// and a tool Registry.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpawlowski/relay"
)

// Default generation parameters. MaxTokens bounds output length; the stop
// sequences mark the turn boundary so the model cannot continue the dialogue
// on its own.
const (
	DefaultMaxTokens   = 256
	DefaultTemperature = 0.7
)

// DefaultStop returns the default stop sequences.
func DefaultStop() []string {
	return []string{"User:", "\nUser"}
}

// Agent owns a tool registry and a completion backend and runs independent
// turns against them. It holds no conversation history: every Run call is a
// fresh turn, and the backend is reset before each one.
type Agent struct {
	completer relay.Completer
	registry  *relay.Registry

	logger      *slog.Logger
	maxTokens   int
	temperature float64
	stop        []string
	observer    func(Event)
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) { a.logger = l }
}

// WithMaxTokens sets the generation output bound.
func WithMaxTokens(n int) Option {
	return func(a *Agent) { a.maxTokens = n }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(a *Agent) { a.temperature = temp }
}

// WithStop sets the stop sequences.
func WithStop(stop []string) Option {
	return func(a *Agent) { a.stop = stop }
}

// WithObserver sets a callback that receives each turn event as the dispatch
// progresses. If nil or not set, events are silently discarded.
func WithObserver(fn func(Event)) Option {
	return func(a *Agent) { a.observer = fn }
}

// New creates an Agent over the given completer and registry.
func New(completer relay.Completer, registry *relay.Registry, opts ...Option) *Agent {
	a := &Agent{
		completer:   completer,
		registry:    registry,
		logger:      slog.Default(),
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		stop:        DefaultStop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one turn: reset the backend, build the prompt, complete,
// parse, and dispatch at most one tool call. The returned string is the
// final user-visible response.
//
// Every tool-related failure is contained in the response text: an
// unresolvable name or a failing capability never surfaces as an error. Only
// a failure of the completion call itself returns a non-nil error, since no
// fallback backend exists.
func (a *Agent) Run(ctx context.Context, input string) (string, error) {
	// Discard any backend-held session state so turns stay independent.
	a.completer.Reset()

	system := relay.SystemPrompt(a.registry.Tools())
	req := relay.Request{
		Prompt:      relay.TurnPrompt(system, input),
		MaxTokens:   a.maxTokens,
		Stop:        a.stop,
		Temperature: a.temperature,
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	text, err := a.completer.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	a.emit(EventCompleted{Text: text})

	call, err := relay.ParseToolCall(text)
	if err != nil {
		// Malformed envelope degrades to the plain-text branch.
		a.logger.Warn("ignoring malformed tool call", "error", err)
		call = nil
	}
	if call == nil {
		return strings.TrimSpace(text), nil
	}

	a.logger.Debug("dispatching tool call", "tool", call.Name)
	a.emit(EventToolCall{Call: *call})

	tool, ok := a.registry.Lookup(call.Name)
	if !ok {
		a.logger.Debug("tool not found", "tool", call.Name)
		return fmt.Sprintf("Tool '%s' not found.", call.Name), nil
	}

	result, err := tool.Call(ctx, call.Arguments)
	if err != nil {
		a.logger.Debug("tool execution failed", "tool", call.Name, "error", err)
		a.emit(EventToolError{Name: call.Name, Err: err})
		return fmt.Sprintf("Error executing tool '%s': %v", call.Name, err), nil
	}

	a.emit(EventToolResult{Name: call.Name, Result: fmt.Sprintf("%v", result)})
	return fmt.Sprintf("The result is: %v", result), nil
}

func (a *Agent) emit(e Event) {
	if a.observer != nil {
		a.observer(e)
	}
}
