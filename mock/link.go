package mock

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

var _ articlecheck.LinkChecker = (*LinkChecker)(nil)

// LinkChecker is a mock implementation of articlecheck.LinkChecker.
type LinkChecker struct {
	FilterLiveFn func(ctx context.Context, urls []string) []string
}

func (l *LinkChecker) FilterLive(ctx context.Context, urls []string) []string {
	return l.FilterLiveFn(ctx, urls)
}
