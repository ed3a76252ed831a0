package builtin

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mpawlowski/relay"
)

type diceArgs struct {
	Sides int `mapstructure:"sides"`
}

// RollDice returns a tool that rolls a single die with the given number of
// sides.
func RollDice() *relay.Tool {
	return mustTool(relay.NewTool(
		"roll_dice",
		"Roll a die with the given number of sides and return the result.",
		[]relay.Param{
			{Name: "sides", Type: relay.TypeInteger},
		},
		func(_ context.Context, args map[string]any) (any, error) {
			var a diceArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			if a.Sides < 2 {
				return nil, fmt.Errorf("sides must be at least 2, got %d", a.Sides)
			}
			return rand.IntN(a.Sides) + 1, nil
		},
	))
}
