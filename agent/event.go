package agent

import "github.com/mpawlowski/relay"

// Event is a sealed interface for turn progress notifications delivered to
// the observer callback. Events are emitted after each stage completes; this
// is post-hoc reporting, not streaming.
type Event interface {
	isEvent()
}

// EventCompleted carries the raw generated text returned by the backend.
type EventCompleted struct {
	Text string
}

func (EventCompleted) isEvent() {}

// EventToolCall reports that a structured invocation was parsed and is about
// to be dispatched.
type EventToolCall struct {
	Call relay.ToolCall
}

func (EventToolCall) isEvent() {}

// EventToolResult reports a successful tool execution.
type EventToolResult struct {
	Name   string
	Result string
}

func (EventToolResult) isEvent() {}

// EventToolError reports a contained tool execution failure.
type EventToolError struct {
	Name string
	Err  error
}

func (EventToolError) isEvent() {}

// Interface compliance checks.
var (
	_ Event = EventCompleted{}
	_ Event = EventToolCall{}
	_ Event = EventToolResult{}
	_ Event = EventToolError{}
)
