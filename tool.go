package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// TypeTag is the primitive type tag of a tool parameter, using JSON Schema
// type names.
type TypeTag string

const (
	TypeString  TypeTag = "string"
	TypeInteger TypeTag = "integer"
	TypeNumber  TypeTag = "number"
	TypeBoolean TypeTag = "boolean"
	TypeObject  TypeTag = "object"
	TypeArray   TypeTag = "array"
)

func (t TypeTag) valid() bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeObject, TypeArray:
		return true
	}
	return false
}

// Param describes a single tool parameter. Parameter order is significant and
// matches the declaration order passed to NewTool.
type Param struct {
	Name string
	Type TypeTag
}

// ToolFunc executes a tool capability. Arguments arrive as decoded JSON
// values keyed by parameter name. The returned value is rendered with %v in
// the final response. Errors are contained at the dispatch boundary.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool pairs a descriptor (name, description, parameter schema) with an
// executable capability. Construct with NewTool; a Tool is immutable after
// construction.
type Tool struct {
	Name        string
	Description string
	Params      []Param

	fn ToolFunc
}

// NewTool builds a Tool, validating the schema up front: the name and every
// parameter must be present and carry a known type tag. The description may
// be empty.
func NewTool(name, description string, params []Param, fn ToolFunc) (*Tool, error) {
	if name == "" {
		return nil, fmt.Errorf("tool name is empty: %w", ErrValidation)
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %q has no function: %w", name, ErrValidation)
	}
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("tool %q has an unnamed parameter: %w", name, ErrValidation)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("tool %q declares parameter %q twice: %w", name, p.Name, ErrValidation)
		}
		seen[p.Name] = true
		if !p.Type.valid() {
			return nil, fmt.Errorf("tool %q parameter %q has invalid type %q: %w", name, p.Name, p.Type, ErrValidation)
		}
	}
	return &Tool{
		Name:        name,
		Description: description,
		Params:      params,
		fn:          fn,
	}, nil
}

// Call invokes the wrapped capability with the given named arguments.
// A panic inside the capability is recovered and returned as an error so
// misbehaving tools cannot abort the turn.
func (t *Tool) Call(ctx context.Context, args map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if args == nil {
		args = map[string]any{}
	}
	return t.fn(ctx, args)
}

// Descriptor serializes the tool's schema as a single-line JSON object:
//
//	{"name":...,"description":...,"parameters":{"a":{"type":"integer"}}}
//
// The parameters object is built by hand so it preserves declaration order,
// which encoding/json maps would not.
func (t *Tool) Descriptor() []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	buf.Write(mustMarshal(t.Name))
	buf.WriteString(`,"description":`)
	buf.Write(mustMarshal(t.Description))
	buf.WriteString(`,"parameters":{`)
	for i, p := range t.Params {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(mustMarshal(p.Name))
		buf.WriteString(`:{"type":`)
		buf.Write(mustMarshal(string(p.Type)))
		buf.WriteString(`}`)
	}
	buf.WriteString(`}}`)
	return buf.Bytes()
}

// mustMarshal encodes a string as JSON. Marshalling a string cannot fail.
func mustMarshal(s string) []byte {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return b
}
