package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readlog"
)

var (
	authorName  = regexp.MustCompile(`(?i)author`)
	authorClass = regexp.MustCompile(`(?i)author|byline`)
)

// Ensure MetadataExtractor implements readlog.MetadataExtractor at compile time.
var _ readlog.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads the title and author from page markup.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata resolves the title from <title>, then og:title, then the
// first <h1>, and the author from an author meta tag, then a byline span.
// Later sources override earlier ones when they are present.
// The error is always nil.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*readlog.Metadata, error) {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return &readlog.Metadata{Title: readlog.DefaultTitle}, nil
	}

	meta := &readlog.Metadata{
		Title:  extractTitle(doc),
		Author: extractAuthor(doc),
	}
	if meta.Title == "" {
		meta.Title = readlog.DefaultTitle
	}
	return meta, nil
}

func extractTitle(doc *goquery.Document) string {
	title := selectionText(doc.Find("title").First())

	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = normalizeSpace(og); og != "" {
			title = og
		}
	}

	if h1 := selectionText(doc.Find("h1").First()); h1 != "" {
		title = h1
	}

	return title
}

func extractAuthor(doc *goquery.Document) *string {
	var author *string

	meta := doc.Find("meta[name][content]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		return authorName.MatchString(name)
	}).First()
	if content, ok := meta.Attr("content"); ok {
		content = strings.TrimSpace(content)
		author = &content
	}

	byline := doc.Find("span[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return authorClass.MatchString(class)
	}).First()
	if byline.Length() > 0 {
		text := selectionText(byline)
		author = &text
	}

	return author
}
