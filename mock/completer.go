package mock

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

var _ articlecheck.Completer = (*Completer)(nil)

// Completer is a mock implementation of articlecheck.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req *articlecheck.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
