package goquery

import (
	"regexp"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readlog"
	"golang.org/x/net/html"
)

// MinCandidateLength is the number of characters the best candidate needs
// before it is trusted over the text of the whole document.
const MinCandidateLength = 100

// contentClass matches class attributes that commonly wrap main content.
var contentClass = regexp.MustCompile(`(?i)content|article|post|entry|text-block|transcript|body`)

// Ensure TextExtractor implements readlog.TextExtractor at compile time.
var _ readlog.TextExtractor = (*TextExtractor)(nil)

// TextExtractor selects the readable text of a page with a longest-candidate
// heuristic. Scripts, styles, navigation, headers, footers and asides never
// contribute text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the longest candidate text, or the text of the whole
// document when no candidate reaches MinCandidateLength characters.
// The error is always nil; unparseable input yields an empty string.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return "", nil
	}

	best := ""
	bestLen := 0
	for _, n := range candidates(doc) {
		text := collectText(n, skipBoilerplate)
		if l := utf8.RuneCountInString(text); l > bestLen {
			best, bestLen = text, l
		}
	}

	if bestLen < MinCandidateLength {
		best = collectText(doc.Get(0), skipBoilerplate)
	}

	return normalizeSpace(best), nil
}

// candidates returns the nodes that may hold the main text, in order: the
// first main, the first article, then every element with a content-like
// class. Nodes inside boilerplate are never candidates.
func candidates(doc *goquery.Document) []*html.Node {
	visible := func(_ int, s *goquery.Selection) bool {
		return !withinSkipped(s.Get(0), skipBoilerplate)
	}

	var nodes []*html.Node
	if m := doc.Find("main").FilterFunction(visible).First(); m.Length() > 0 {
		nodes = append(nodes, m.Get(0))
	}
	if a := doc.Find("article").FilterFunction(visible).First(); a.Length() > 0 {
		nodes = append(nodes, a.Get(0))
	}
	doc.Find("[class]").FilterFunction(visible).Each(func(_ int, s *goquery.Selection) {
		if class, _ := s.Attr("class"); contentClass.MatchString(class) {
			nodes = append(nodes, s.Get(0))
		}
	})
	return nodes
}
