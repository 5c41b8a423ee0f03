// Package htmldoc wraps the parsed HTML of an audited page behind the small
// query surface the check battery needs. Parsing is best-effort: arbitrary
// third-party markup is the input domain, and malformed HTML must never
// abort an audit.
package htmldoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is an immutable view of one parsed page.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML. The underlying tokenizer recovers
// from malformed markup, so an error here means the body could not be read
// at all, not that the HTML was invalid.
func Parse(body []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Node is one matched element.
type Node struct {
	sel *goquery.Selection
}

// Tag returns the lowercase element name.
func (n Node) Tag() string {
	return goquery.NodeName(n.sel)
}

// Attr returns the attribute value and whether it is present.
func (n Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// AttrOr returns the attribute value or def when absent.
func (n Node) AttrOr(name, def string) string {
	return n.sel.AttrOr(name, def)
}

// Text returns the node's text content with whitespace collapsed.
func (n Node) Text() string {
	return collapse(n.sel.Text())
}

// First returns the first element matching the CSS selector.
func (d *Document) First(selector string) (Node, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: sel}, true
}

// Each visits every element matching the selector in document order.
func (d *Document) Each(selector string, fn func(i int, n Node)) {
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		fn(i, Node{sel: s})
	})
}

// Count returns the number of elements matching the selector.
func (d *Document) Count(selector string) int {
	return d.doc.Find(selector).Length()
}

// VisibleText returns the page's body text with script, style, noscript and
// template contents excluded and whitespace collapsed.
func (d *Document) VisibleText() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range d.doc.Find("body").Nodes {
		walk(n)
	}
	return collapse(sb.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
