// Package comments implements the comment extractor (C13): a parallel
// pipeline restricted to comment-selector rules and comment-discard
// rules, reusing the same rule engine and filtered text walker as the
// main content pipeline rather than a bespoke traversal. Grounded on
// the teacher's pkg/extractors/generic/comments.go shape (a narrower
// copy of the content-extraction flow scoped to a comment container).
package comments

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/rules"
	"github.com/kestrelhq/distill/walker"
)

// Options configures comment extraction.
type Options struct {
	FavorPrecision bool
	MaxLinkDensity float64
}

// Extract finds the first comment container matching
// rules.CommentContentRules, removes anything matching
// rules.CommentDiscardRules from it, and linearizes the remainder via
// the filtered text walker. Returns ("", false) if no comment
// container is found.
func Extract(doc *htmldom.Document, opts Options) (string, bool) {
	root := doc.Root()
	var container *htmldom.Node
	for _, rule := range rules.CommentContentRules {
		if m := rules.Query(root, rule); m != nil && m.Len() > 0 {
			container = m
			break
		}
	}
	if container == nil {
		return "", false
	}

	matches := []*htmldom.Node{}
	container.Descendants().Each(func(_ int, n *htmldom.Node) {
		if rules.AnyMatch(n, rules.CommentDiscardRules) {
			matches = append(matches, n)
		}
	})
	for _, m := range matches {
		m.Remove(true)
	}

	text := walker.Walk(container, walker.Options{
		IncludeTables:  false,
		MaxLinkDensity: opts.MaxLinkDensity,
		FavorPrecision: opts.FavorPrecision,
	})
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
