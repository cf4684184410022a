package readlog

// DefaultTitle is used when a page has no usable title.
const DefaultTitle = "Untitled"

// Metadata holds the bibliographic details of a page.
type Metadata struct {
	Title string

	// Author is nil when the page carries no author signal at all.
	// A non-nil empty string means a signal was found but it had no text.
	Author *string
}

// HasAuthor reports whether the metadata carries a printable author.
func (m *Metadata) HasAuthor() bool {
	return m.Author != nil && *m.Author != ""
}
