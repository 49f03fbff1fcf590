// Package htmldom is a thin facade over goquery's DOM, giving the rest of
// the extraction pipeline a uniform query/mutation API: parse, select,
// walk in document order, read/write attributes, rename, clone and
// remove nodes. No extraction logic lives here.
package htmldom

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree.
type Document struct {
	GQ *goquery.Document
}

// Parse builds a Document from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{GQ: doc}, nil
}

// ParseString builds a Document from an HTML string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes builds a Document from a UTF-8 byte buffer.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// Root returns the whole-document selection.
func (d *Document) Root() *Node {
	return &Node{Sel: d.GQ.Selection}
}

// Find runs a CSS selector query against the whole document, in
// document order.
func (d *Document) Find(selector string) *Node {
	return &Node{Sel: d.GQ.Find(selector)}
}

// Clone deep-clones the document. Used for the pre-cleaning backup that
// the fallback orchestrator (C11) needs: cleaning mutates the live
// document in place, so a pristine copy must be taken before it runs.
func (d *Document) Clone() *Document {
	return &Document{GQ: goquery.CloneDocument(d.GQ)}
}

// HTML returns the serialized document body, or the whole document if
// there is no <body>.
func (d *Document) HTML() string {
	if body := d.GQ.Find("body"); body.Length() > 0 {
		h, _ := body.Html()
		return h
	}
	h, _ := d.GQ.Html()
	return h
}

// Text returns the whole document's concatenated text.
func (d *Document) Text() string {
	return d.GQ.Text()
}

// RawNode exposes the underlying *html.Node of the document root, for
// collaborators (e.g. the XPath-based JSON-LD locator in fallback) that
// need to walk the same tree goquery parsed without paying for a second
// parse pass.
func (d *Document) RawNode() *html.Node {
	if d.GQ.Nodes != nil && len(d.GQ.Nodes) > 0 {
		return d.GQ.Nodes[0]
	}
	return nil
}
