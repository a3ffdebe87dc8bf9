package mock

import "github.com/fwojciec/articlecheck"

var _ articlecheck.Converter = (*Converter)(nil)

// Converter is a mock implementation of articlecheck.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
