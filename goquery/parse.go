// Package goquery implements readlog's HTML extractors on top of goquery
// and the golang.org/x/net/html parse tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseDocument parses raw HTML into a read-only goquery document.
// Scripting is disabled so <noscript> content is parsed as markup rather
// than raw text, which keeps stray tags out of the extracted text.
func parseDocument(rawHTML string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// boilerplateTags never contribute readable text.
var boilerplateTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
	atom.Nav:    true,
	atom.Header: true,
	atom.Footer: true,
	atom.Aside:  true,
}

// invisibleTags hold text a reader never sees.
var invisibleTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// skipFunc reports whether a node and its whole subtree are left out of
// text collection.
type skipFunc func(n *html.Node) bool

func skipTags(tags map[atom.Atom]bool) skipFunc {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && tags[n.DataAtom]
	}
}

var (
	skipBoilerplate = skipTags(boilerplateTags)
	skipInvisible   = skipTags(invisibleTags)
)

// withinSkipped reports whether n or any of its ancestors is skipped.
func withinSkipped(n *html.Node, skip skipFunc) bool {
	for p := n; p != nil; p = p.Parent {
		if skip(p) {
			return true
		}
	}
	return false
}

// collectText gathers the text nodes below n in document order. Each text
// node is trimmed, empty ones are dropped and the rest are joined with a
// single space. The tree is only read, never modified.
func collectText(n *html.Node, skip skipFunc) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if skip(n) {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// normalizeSpace collapses whitespace runs to a single space and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// selectionText returns the normalized visible text of the first node in sel.
func selectionText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return normalizeSpace(collectText(sel.Get(0), skipInvisible))
}
