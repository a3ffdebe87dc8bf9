package mock

import "github.com/fwojciec/articlecheck"

var _ articlecheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of articlecheck.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*articlecheck.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*articlecheck.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
