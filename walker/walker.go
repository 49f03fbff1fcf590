// Package walker implements the filtered text walker (C10): a
// depth-first descent of the chosen content subtree producing plain
// text, honoring structural, link-density and boilerplate-class
// filters. New relative to the teacher (which emits cleaned HTML, not
// a filtered plain-text walk), built in the teacher's idiom — a small
// sum-type dispatch over tag families, per spec.md §9 Design Notes
// ("Handler dispatch" / "A sum type over tag families ... routes
// cleanly") — grounded on the teacher's pkg/cleaners/content.go text
// normalization helpers and on mrjoshuak-readabiligo's goquery-based
// traversal style.
package walker

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/linkdensity"
	"github.com/kestrelhq/distill/patterns"
	"github.com/kestrelhq/distill/pools"
	"golang.org/x/net/html"
)

// Options configures the walk.
type Options struct {
	IncludeTables          bool
	IncludeLinks           bool
	MaxLinkDensity         float64
	FavorPrecision         bool
	FilterNamedBoilerplate bool
	PageTitle              string
	MaxOutputLen           int // 0 = unbounded
}

var hardExcludedAncestorTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "nav": true,
	"aside": true, "iframe": true, "svg": true, "ins": true,
}

var blockEmitTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// family is the tag-family sum type handler dispatch routes on.
type family int

const (
	familyOther family = iota
	familyParagraph
	familyHeading
	familyList
	familyQuoteOrCode
	familyTable
	familyBreak
	familyGraphic
	familyFormatting
)

func classify(tag string) family {
	switch tag {
	case "p":
		return familyParagraph
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return familyHeading
	case "li":
		return familyList
	case "blockquote", "pre", "code", "q":
		return familyQuoteOrCode
	case "table":
		return familyTable
	case "br":
		return familyBreak
	case "img", "figure", "figcaption":
		return familyGraphic
	case "b", "strong", "i", "em", "u", "span", "a":
		return familyFormatting
	default:
		return familyOther
	}
}

// walker carries the accumulated output and the node-identity "done"
// set (spec.md §3: monotonically growing, never revisited).
type walker struct {
	opts     Options
	sb       *strings.Builder
	done     map[htmldom.NodeID]bool
	root     *htmldom.Node
	budget   int // remaining output char budget; -1 = unbounded
	titleKey string
}

// Walk linearizes subtree into plain text, per spec.md §4.7. The
// output builder is drawn from pools.GlobalStringBuilders rather than
// allocated fresh, since a single extraction can call Walk repeatedly
// (content, comments, split-body chunks).
func Walk(subtree *htmldom.Node, opts Options) string {
	sb := pools.GlobalStringBuilders.Get()
	defer pools.GlobalStringBuilders.Put(sb)

	w := &walker{
		opts:     opts,
		sb:       sb,
		done:     map[htmldom.NodeID]bool{},
		root:     subtree,
		titleKey: normalizeTitle(opts.PageTitle),
	}
	if opts.MaxOutputLen > 0 {
		w.budget = opts.MaxOutputLen
	} else {
		w.budget = -1
	}
	w.walk(subtree.Raw(), 0)
	return PostProcess(w.sb.String())
}

func (w *walker) overBudget() bool {
	return w.budget == 0
}

func (w *walker) write(s string) {
	if s == "" {
		return
	}
	if w.budget >= 0 {
		if len(s) > w.budget {
			s = s[:w.budget]
		}
		w.budget -= len(s)
	}
	w.sb.WriteString(s)
}

func (w *walker) walk(n *html.Node, depth int) {
	if n == nil || w.overBudget() {
		return
	}
	switch n.Type {
	case html.TextNode:
		w.write(n.Data)
		w.write(" ")
		return
	case html.ElementNode:
		w.walkElement(n, depth)
		return
	default:
		// Comments and other node kinds carry no visible text.
		w.walkChildren(n, depth)
	}
}

func (w *walker) walkChildren(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil && !w.overBudget(); c = c.NextSibling {
		w.walk(c, depth+1)
	}
}

func (w *walker) walkElement(raw *html.Node, depth int) {
	node := htmldom.WrapRaw(raw)
	id := node.ID()
	if w.done[id] {
		return
	}

	if w.excluded(node, raw == w.root.Raw()) {
		w.done[id] = true
		return
	}
	if w.skip(node) {
		w.done[id] = true
		return
	}

	fam := classify(node.TagName())
	switch fam {
	case familyBreak:
		w.write("\n")
		w.done[id] = true
		return
	case familyTable:
		w.renderTable(node)
		w.done[id] = true
		return
	}

	tag := node.TagName()
	if blockEmitTags[tag] {
		w.write("\n\n")
	}
	if tag == "li" {
		w.write("\n")
	}

	w.walkChildren(raw, depth)
	w.done[id] = true
}

// excluded implements spec.md §4.7's ancestor-based hard exclusion.
// isSelf indicates the node being checked is the subtree root itself,
// which is never excluded by the header/footer/breadcrumb rules (the
// spec's ancestor check only applies strictly below the root).
func (w *walker) excluded(n *htmldom.Node, isSelf bool) bool {
	tag := n.TagName()
	if hardExcludedAncestorTags[tag] {
		return true
	}
	if containsToken(n.ClassAndID(), patterns.AlwaysExcludedNames) {
		return true
	}
	if itemtype, ok := n.Attr("itemtype"); ok && !isSelf && strings.Contains(strings.ToLower(itemtype), "breadcrumblist") {
		return true
	}
	if tag == "header" || tag == "footer" {
		if isSelf {
			return false
		}
		if tag == "footer" && patterns.IsBoilerplateClass(n.ClassAndID()) {
			return true
		}
		if !hasArticleOrMainAncestor(n) {
			return true
		}
	}
	if w.opts.FilterNamedBoilerplate && patterns.IsBoilerplateClass(n.ClassAndID()) {
		return true
	}
	return false
}

func hasArticleOrMainAncestor(n *htmldom.Node) bool {
	cur := n.Parent()
	for cur.Len() > 0 {
		tag := cur.TagName()
		if tag == "article" || tag == "main" {
			return true
		}
		cur = cur.Parent()
	}
	return false
}

func containsToken(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// skip implements spec.md §4.7's per-node skip rules: tables when
// disabled or layout-only, link-dense div/ul/ol, boilerplate-looking
// headings, the page-title h1, and short share-button p/div text.
func (w *walker) skip(n *htmldom.Node) bool {
	tag := n.TagName()

	switch tag {
	case "table":
		if !w.opts.IncludeTables {
			return true
		}
		return isLayoutTable(n)
	case "div", "ul", "ol":
		if tag == "div" {
			text := strings.TrimSpace(n.Text())
			if len(text) < 80 && patterns.IsShareButtonText(text) {
				return true
			}
		}
		return linkdensity.Fails(n, maxDensityOrDefault(w.opts.MaxLinkDensity), w.opts.FavorPrecision)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return w.skipHeading(n)
	case "p":
		text := strings.TrimSpace(n.OwnText())
		if len(text) < 50 && patterns.IsShareButtonText(text) {
			return true
		}
	}
	return false
}

func maxDensityOrDefault(d float64) float64 {
	if d == 0 {
		return 0.8
	}
	return d
}

func (w *walker) skipHeading(n *htmldom.Node) bool {
	text := strings.TrimSpace(n.Text())
	if patterns.IsShareButtonText(text) {
		return true
	}
	if patterns.HeadingBoilerplateClassRE.MatchString(n.ClassAndID()) {
		return true
	}
	if v, ok := n.Attr("itemprop"); ok && v == "headline" {
		return true
	}
	if n.TagName() == "h1" && w.titleKey != "" && normalizeTitle(text) == w.titleKey {
		return true
	}
	return false
}

var titleSeparators = []string{" - ", " | ", ": ", " — ", " – "}

// normalizeTitle strips a trailing/leading "Site" half from a
// "Title - Site" style string and normalizes whitespace/case, so the
// walker can recognize an <h1> that merely repeats the page title
// (spec.md §4.7's separator-aware comparison).
func normalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range titleSeparators {
		if idx := strings.Index(s, sep); idx > 0 {
			s = s[:idx]
			break
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func isLayoutTable(t *htmldom.Node) bool {
	if role, ok := t.Attr("role"); ok && strings.EqualFold(role, "presentation") {
		return true
	}
	rows := t.Query("tr")
	if rows.Len() <= 1 {
		return true
	}
	cellCount := 0
	rows.Each(func(_ int, r *htmldom.Node) {
		cellCount += r.Query("td, th").Len()
	})
	return cellCount <= 1
}
