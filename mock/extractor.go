package mock

import "github.com/fwojciec/readlog"

var (
	_ readlog.TextExtractor     = (*TextExtractor)(nil)
	_ readlog.MetadataExtractor = (*MetadataExtractor)(nil)
)

// TextExtractor is a mock implementation of readlog.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

// MetadataExtractor is a mock implementation of readlog.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*readlog.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*readlog.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
