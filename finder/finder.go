// Package finder implements the content finder (C7): applies the
// spec.md §4.2 content rules with boilerplate-ancestor filtering,
// wrapper-vs-nested preference, and the minimum-content gate. Grounded
// on the teacher's ExtractBestNode orchestration shape
// (pkg/extractors/generic/extract_best_node.go: strip → score →
// select), generalized from "always fall through to the scorer" into
// the spec's "rules first, scorer only on a full miss" design.
package finder

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/patterns"
	"github.com/kestrelhq/distill/rules"
)

const minContentChars = 1000

var sidebarLikeClassMarkers = []string{
	"sidebar", "social", "share", "author", "sticky", "toc", "related", "widget",
}

var wrapperContentClassMarkers = []string{
	"article-content", "post-content", "storybody", "entry-content",
}

// BoilerplateCache precomputes the set of nodes that are structural
// boilerplate or carry a boilerplate class, giving O(1) ancestor checks
// during rule application (spec.md §4.4).
type BoilerplateCache struct {
	ids map[htmldom.NodeID]bool
}

// BuildBoilerplateCache walks the whole document once, collecting
// <header>/<nav>/<aside>/<footer> and every [class]/[id] matching the
// boilerplate matcher.
func BuildBoilerplateCache(doc *htmldom.Document) *BoilerplateCache {
	cache := &BoilerplateCache{ids: map[htmldom.NodeID]bool{}}
	doc.Find("*").Each(func(_ int, n *htmldom.Node) {
		if patterns.StructuralBoilerplateTags[n.TagName()] || patterns.IsBoilerplateClass(n.ClassAndID()) {
			cache.ids[n.ID()] = true
		}
	})
	return cache
}

// AnyAncestorBoilerplate reports whether any ancestor of n, strictly
// below root, is in the cache.
func (c *BoilerplateCache) AnyAncestorBoilerplate(n, root *htmldom.Node) bool {
	rootID := root.ID()
	cur := n.Parent()
	for cur.Len() > 0 {
		if cur.ID() == rootID {
			return false
		}
		if c.ids[cur.ID()] {
			return true
		}
		cur = cur.Parent()
	}
	return false
}

// Options configures Find.
type Options struct {
	TargetLanguage string // ISO-639-1 primary subtag; empty disables the filter
	DocumentLang   string
}

// Find applies spec.md §4.4: iterate content rules in priority order,
// reject ancestor-boilerplate matches, apply the wrapper-vs-nested
// preference and the minimum-content gate, and return the first
// accepted match. Returns an empty Node if no rule produces an
// acceptable candidate (caller falls back to the heuristic scorer, C8).
func Find(doc *htmldom.Document, opts Options) *htmldom.Node {
	root := doc.Root()
	cache := BuildBoilerplateCache(doc)

	for _, rule := range rules.ContentRules {
		matches := rules.QueryAll(root, rule)
		for _, m := range matches {
			if cache.AnyAncestorBoilerplate(m, root) {
				continue
			}
			if !languageAccepted(m, opts) {
				continue
			}
			if shouldSkipWrapper(m) {
				continue
			}
			accepted := applyMinContentGate(m, cache, root)
			if accepted.Len() > 0 {
				return accepted
			}
		}
	}
	return &htmldom.Node{}
}

// applyMinContentGate implements the 1000-char minimum-content rule:
// if the match is under the threshold, try its parent; accept the
// parent only if it has more than 2x the child's text, is itself
// ≥1000 chars, and is not itself inside boilerplate.
func applyMinContentGate(m *htmldom.Node, cache *BoilerplateCache, root *htmldom.Node) *htmldom.Node {
	childLen := trimmedLen(m)
	if childLen >= minContentChars {
		return m
	}
	parent := m.Parent()
	if parent.Len() == 0 {
		return &htmldom.Node{}
	}
	parentLen := trimmedLen(parent)
	if parentLen > 2*childLen && parentLen >= minContentChars && !cache.AnyAncestorBoilerplate(parent, root) {
		return parent
	}
	return &htmldom.Node{}
}

func trimmedLen(n *htmldom.Node) int {
	return len(strings.TrimSpace(n.Text()))
}

// shouldSkipWrapper implements spec.md §4.4's wrapper-vs-nested
// preference: skip a generic div/section wrapper that both contains a
// sidebar/social-ish child and a nested, substantially-sized
// content-indicating descendant; skip a classless <article> only when a
// nested article with a specific content class exists; never skip
// <main> or a classed <article>.
func shouldSkipWrapper(n *htmldom.Node) bool {
	tag := n.TagName()
	if tag == "main" {
		return false
	}
	if tag == "article" {
		if n.Class() != "" {
			return false
		}
		nested := n.Query("article")
		skip := false
		nested.Each(func(_ int, a *htmldom.Node) {
			if skip {
				return
			}
			if containsAnyMarker(a.ClassAndID(), wrapperContentClassMarkers) {
				skip = true
			}
		})
		return skip
	}
	if tag != "div" && tag != "section" {
		return false
	}
	hasSidebarChild := false
	n.Children().Each(func(_ int, c *htmldom.Node) {
		if hasSidebarChild {
			return
		}
		if containsAnyMarker(c.ClassAndID(), sidebarLikeClassMarkers) {
			hasSidebarChild = true
		}
		if c.TagName() == "aside" || c.TagName() == "nav" {
			hasSidebarChild = true
		}
	})
	if !hasSidebarChild {
		return false
	}
	hasSubstantialNestedContent := false
	n.Descendants().Each(func(_ int, d *htmldom.Node) {
		if hasSubstantialNestedContent {
			return
		}
		if containsAnyMarker(d.ClassAndID(), wrapperContentClassMarkers) && trimmedLen(d) >= minContentChars {
			hasSubstantialNestedContent = true
		}
	})
	return hasSubstantialNestedContent
}

func containsAnyMarker(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// languageAccepted implements spec.md §4.4's target-language filter:
// kept iff the node's own lang attribute (if any) normalizes to the
// target, else the document's language; missing metadata is accepted.
func languageAccepted(n *htmldom.Node, opts Options) bool {
	if opts.TargetLanguage == "" {
		return true
	}
	if lang, ok := n.Attr("lang"); ok && lang != "" {
		return normalizeLang(lang) == normalizeLang(opts.TargetLanguage)
	}
	if opts.DocumentLang == "" {
		return true
	}
	return normalizeLang(opts.DocumentLang) == normalizeLang(opts.TargetLanguage)
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
