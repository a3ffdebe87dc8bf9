package mock

import "github.com/fwojciec/articlecheck"

var _ articlecheck.MetadataReader = (*MetadataReader)(nil)

// MetadataReader is a mock implementation of articlecheck.MetadataReader.
type MetadataReader struct {
	ReadMetadataFn func(html string) (*articlecheck.Metadata, error)
}

func (m *MetadataReader) ReadMetadata(html string) (*articlecheck.Metadata, error) {
	return m.ReadMetadataFn(html)
}
