package relay

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Wire-format delimiters. These are a contract between the prompt builder,
// which teaches them to the model, and the parser, which extracts them from
// generated text. They must change together.
const (
	ToolCallOpen  = "<tool_call>"
	ToolCallClose = "</tool_call>"
	ToolsOpen     = "<tools>"
	ToolsClose    = "</tools>"
)

// ToolCall is a structured invocation parsed from generated text. It exists
// only within a single dispatch turn.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// callPattern matches the first invocation envelope. Non-greedy so multiple
// envelopes in one response yield only the first; (?s) lets the payload span
// newlines.
var callPattern = regexp.MustCompile(`(?s)` +
	regexp.QuoteMeta(ToolCallOpen) + `(.*?)` + regexp.QuoteMeta(ToolCallClose))

// ParseToolCall extracts a single tool invocation from raw generated text.
//
// Absence of an envelope is not an error: the return is (nil, nil) and the
// text is a plain answer. An envelope whose payload is not a JSON object
// returns an error wrapping ErrMalformedCall; callers log it and degrade to
// the plain-text branch. On success, a missing "arguments" key yields an
// empty map and a missing "name" key yields an empty name, which fails
// registry lookup downstream.
func ParseToolCall(text string) (*ToolCall, error) {
	m := callPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	payload := strings.TrimSpace(m[1])
	var call ToolCall
	if err := json.Unmarshal([]byte(payload), &call); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCall, err)
	}
	if call.Arguments == nil {
		call.Arguments = map[string]any{}
	}
	return &call, nil
}
