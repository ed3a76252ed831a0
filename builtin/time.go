package builtin

import (
	"context"
	"time"

	"github.com/mpawlowski/relay"
)

// CurrentTime returns a tool that reports the current local time. It takes
// no parameters.
func CurrentTime() *relay.Tool {
	return mustTool(relay.NewTool(
		"current_time",
		"Get the current date and time.",
		nil,
		func(context.Context, map[string]any) (any, error) {
			return time.Now().Format(time.RFC1123), nil
		},
	))
}
