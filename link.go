package articlecheck

import "context"

// LinkChecker filters candidate citation URLs down to the ones that resolve.
type LinkChecker interface {
	// FilterLive returns the live URLs from urls in their original order.
	// When none of them is live, the first candidate is returned on its own.
	// An empty input returns an empty result.
	FilterLive(ctx context.Context, urls []string) []string
}
