// Package mock provides test doubles for relay interfaces using function fields.
package mock

import (
	"context"

	"github.com/mpawlowski/relay"
)

// Interface compliance check.
var _ relay.Completer = (*Completer)(nil)

// Completer is a test double for relay.Completer.
// Set CompleteFn before calling Complete. ResetFn may be left nil.
type Completer struct {
	CompleteFn func(ctx context.Context, req relay.Request) (string, error)
	ResetFn    func()
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req relay.Request) (string, error) {
	return c.CompleteFn(ctx, req)
}

// Reset delegates to ResetFn when set.
func (c *Completer) Reset() {
	if c.ResetFn != nil {
		c.ResetFn()
	}
}
