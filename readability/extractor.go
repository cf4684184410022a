// Package readability provides readlog extractors backed by go-readability,
// the Go port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/fwojciec/readlog"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements the readlog extractor interfaces at compile time.
var (
	_ readlog.TextExtractor     = (*Extractor)(nil)
	_ readlog.MetadataExtractor = (*Extractor)(nil)
)

// Extractor uses go-readability to find the article text, title and byline.
// Pages the library cannot handle are passed to the fallbacks when set.
type Extractor struct {
	// Fallback extracts text when readability fails or finds nothing.
	Fallback readlog.TextExtractor

	// FallbackMetadata fills in the title and author readability could not find.
	FallbackMetadata readlog.MetadataExtractor
}

// NewExtractor creates a new Extractor without fallbacks.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the whitespace-normalized article text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	article, err := parse(rawHTML)
	if err == nil {
		if text := normalizeSpace(article.TextContent); text != "" {
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

// ExtractMetadata returns the article title and byline.
func (e *Extractor) ExtractMetadata(rawHTML string) (*readlog.Metadata, error) {
	meta := &readlog.Metadata{}
	if article, err := parse(rawHTML); err == nil {
		meta.Title = normalizeSpace(article.Title)
		if byline := normalizeSpace(article.Byline); byline != "" {
			meta.Author = &byline
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

func parse(rawHTML string) (readability.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return readability.Article{}, readlog.Errorf(readlog.EINVALID, "empty HTML input")
	}
	return readability.FromReader(strings.NewReader(rawHTML), nil)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
