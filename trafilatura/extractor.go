// Package trafilatura provides readlog extractors backed by go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/readlog"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements the readlog extractor interfaces at compile time.
var (
	_ readlog.TextExtractor     = (*Extractor)(nil)
	_ readlog.MetadataExtractor = (*Extractor)(nil)
)

// Extractor wraps go-trafilatura to extract the main text and metadata.
// Pages the library cannot handle are passed to the fallbacks when set.
type Extractor struct {
	// Fallback extracts text when trafilatura fails or finds nothing.
	Fallback readlog.TextExtractor

	// FallbackMetadata fills in the title and author trafilatura could not find.
	FallbackMetadata readlog.MetadataExtractor
}

// NewExtractor creates a new Extractor without fallbacks.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the whitespace-normalized main text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	result, err := extract(rawHTML)
	if err == nil {
		if text := normalizeSpace(result.ContentText); text != "" {
			return text, nil
		}
	}
	if e.Fallback != nil {
		return e.Fallback.ExtractText(rawHTML)
	}
	if err != nil {
		return "", err
	}
	return "", nil
}

// ExtractMetadata returns the title and author found by trafilatura.
func (e *Extractor) ExtractMetadata(rawHTML string) (*readlog.Metadata, error) {
	meta := &readlog.Metadata{}
	if result, err := extract(rawHTML); err == nil {
		meta.Title = normalizeSpace(result.Metadata.Title)
		if author := normalizeSpace(result.Metadata.Author); author != "" {
			meta.Author = &author
		}
	}

	if (meta.Title == "" || meta.Author == nil) && e.FallbackMetadata != nil {
		fallback, err := e.FallbackMetadata.ExtractMetadata(rawHTML)
		if err != nil {
			return nil, err
		}
		if meta.Title == "" {
			meta.Title = fallback.Title
		}
		if meta.Author == nil {
			meta.Author = fallback.Author
		}
	}

	if meta.Title == "" {
		meta.Title = readlog.DefaultTitle
	}
	return meta, nil
}

func extract(rawHTML string) (*trafilatura.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readlog.Errorf(readlog.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	return trafilatura.Extract(strings.NewReader(rawHTML), opts)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
