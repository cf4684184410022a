package readlog

// TextExtractor selects the readable text of an HTML page.
type TextExtractor interface {
	// ExtractText returns the best-guess readable text of the page,
	// whitespace-normalized. Extraction is best effort: an empty or
	// malformed page yields an empty string, not an error.
	ExtractText(html string) (string, error)
}

// MetadataExtractor reads the title and author of an HTML page.
type MetadataExtractor interface {
	// ExtractMetadata returns the page metadata. Title is never empty;
	// it falls back to DefaultTitle.
	ExtractMetadata(html string) (*Metadata, error)
}
