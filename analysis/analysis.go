// Package analysis assesses articles with a language model.
// It builds structured-output prompts, decodes and sanitizes the model's
// JSON replies, filters cited sources through a LinkChecker, and joins the
// SEO and factual assessments into a single report.
package analysis

import (
	"context"
	"time"

	"github.com/fwojciec/articlecheck"
	"golang.org/x/sync/errgroup"
)

// DefaultTemperature is the sampling temperature for both analyses.
const DefaultTemperature float32 = 0.7

// Option configures an analyzer.
type Option func(*config)

type config struct {
	contentLimit  int
	temperature   float32
	referenceDate time.Time
	now           func() time.Time
}

func newConfig(opts []Option) config {
	cfg := config{
		contentLimit: DefaultContentLimit,
		temperature:  DefaultTemperature,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// today returns the fixed reference date if one is set, otherwise the
// current date.
func (c config) today() time.Time {
	if !c.referenceDate.IsZero() {
		return c.referenceDate
	}
	return c.now()
}

// WithContentLimit sets how many body runes are embedded in prompts.
func WithContentLimit(n int) Option {
	return func(c *config) {
		c.contentLimit = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *config) {
		c.temperature = t
	}
}

// WithReferenceDate pins the "today" used by the factual prompt.
func WithReferenceDate(d time.Time) Option {
	return func(c *config) {
		c.referenceDate = d
	}
}

// WithClock replaces the clock used when no reference date is pinned.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// filterSources replaces each source list with its live subset.
// Lists are checked concurrently and keep their positions.
func filterSources(ctx context.Context, links articlecheck.LinkChecker, sources [][]string) [][]string {
	out := make([][]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, urls := range sources {
		g.Go(func() error {
			live := links.FilterLive(gctx, urls)
			if live == nil {
				live = []string{}
			}
			out[i] = live
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// analysisError keeps EANALYSIS errors as they are and wraps everything else.
func analysisError(err error, msg string) error {
	if articlecheck.ErrorCode(err) == articlecheck.EANALYSIS {
		return err
	}
	return articlecheck.WrapError(articlecheck.EANALYSIS, err, "%s", msg)
}
