package builtin

import (
	"context"

	"github.com/mpawlowski/relay"
)

type addArgs struct {
	A int `mapstructure:"a"`
	B int `mapstructure:"b"`
}

// AddNumbers returns a tool that adds two integers.
func AddNumbers() *relay.Tool {
	return mustTool(relay.NewTool(
		"add_numbers",
		"Add two integers and return their sum.",
		[]relay.Param{
			{Name: "a", Type: relay.TypeInteger},
			{Name: "b", Type: relay.TypeInteger},
		},
		func(_ context.Context, args map[string]any) (any, error) {
			var a addArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			return a.A + a.B, nil
		},
	))
}
