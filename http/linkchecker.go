package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/articlecheck"
	"golang.org/x/sync/errgroup"
)

// DefaultLinkTimeout is the default timeout for a single liveness check.
const DefaultLinkTimeout = 5 * time.Second

// DefaultLinkConcurrency bounds the number of checks in flight per call.
const DefaultLinkConcurrency = 8

// Ensure LinkChecker implements articlecheck.LinkChecker at compile time.
var _ articlecheck.LinkChecker = (*LinkChecker)(nil)

// LinkChecker checks citation URLs with HEAD requests.
// A URL is live if it answers with a 2xx status within the timeout.
type LinkChecker struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	userAgent   string
}

// LinkOption configures a LinkChecker.
type LinkOption func(*LinkChecker)

// WithLinkTimeout sets the per-URL timeout.
// Defaults to DefaultLinkTimeout (5s) if not specified.
func WithLinkTimeout(d time.Duration) LinkOption {
	return func(c *LinkChecker) {
		c.timeout = d
	}
}

// WithLinkConcurrency sets how many URLs are checked at once.
func WithLinkConcurrency(n int) LinkOption {
	return func(c *LinkChecker) {
		c.concurrency = n
	}
}

// NewLinkChecker creates a new LinkChecker.
func NewLinkChecker(opts ...LinkOption) *LinkChecker {
	c := &LinkChecker{
		timeout:     DefaultLinkTimeout,
		concurrency: DefaultLinkConcurrency,
		userAgent:   UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.concurrency <= 0 {
		c.concurrency = 1
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// FilterLive returns the live URLs from urls, preserving their order.
// If none is live the first candidate is returned anyway, so a suggestion
// always carries at least one reference when the model offered one.
func (c *LinkChecker) FilterLive(ctx context.Context, urls []string) []string {
	if len(urls) == 0 {
		return []string{}
	}

	live := make([]bool, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			live[i] = c.IsLive(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	result := make([]string, 0, len(urls))
	for i, u := range urls {
		if live[i] {
			result = append(result, u)
		}
	}

	if len(result) == 0 {
		return []string{urls[0]}
	}
	return result
}

// IsLive reports whether a HEAD request to url succeeds.
// Any transport error, timeout or non-2xx status counts as not live.
func (c *LinkChecker) IsLive(ctx context.Context, url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
