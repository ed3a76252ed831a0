// Package builtin provides sample tools for the relay agent. They are
// illustrative payloads: the dispatch engine does not depend on them.
package builtin

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/mpawlowski/relay"
)

// decodeArgs decodes a parsed argument map into a typed argument struct.
// Input is weakly typed: JSON numbers arrive as float64 and are converted to
// the declared field types, so "10", 10 and 10.0 all satisfy an int field.
// A value that cannot be converted is an execution failure.
func decodeArgs(args map[string]any, out any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// Tools returns all built-in tools in a stable order, ready for registration.
func Tools() []*relay.Tool {
	return []*relay.Tool{
		AddNumbers(),
		RollDice(),
		CurrentTime(),
		Glob(),
	}
}

// mustTool panics on a schema error. Built-in schemas are static, so a
// failure here is a programming error caught by the package tests.
func mustTool(t *relay.Tool, err error) *relay.Tool {
	if err != nil {
		panic(err)
	}
	return t
}
