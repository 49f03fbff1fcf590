// Package fallback implements the fallback orchestrator (C11):
// structured-body short-circuit (JSON-LD / Discourse), readability-style
// candidate comparison, baseline rescue, and split-body merging.
// Grounded on the teacher's GenericContentExtractor.Extract cascading
// retry loop (pkg/extractors/generic/content.go: "retry with
// progressively laxer options, accept the first sufficient result"),
// go-shiori/go-readability as the external readability-like algorithm,
// and antchfx/htmlquery+xpath for locating JSON-LD/Discourse script
// blocks on the same tree goquery already parsed.
package fallback

import (
	"encoding/json"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/kestrelhq/distill/htmldom"
)

// JSONLDArticleBody recursively searches every <script
// type="application/ld+json"> block in doc for an "articleBody" key,
// per spec.md §4.8 step 1, and returns the longest one found.
func JSONLDArticleBody(doc *htmldom.Document) (string, bool) {
	root := doc.RawNode()
	if root == nil {
		return "", false
	}
	nodes := htmlquery.Find(root, `//script[@type="application/ld+json"]`)
	best := ""
	for _, n := range nodes {
		raw := htmlquery.InnerText(n)
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			continue
		}
		if body := findArticleBody(v); len(body) > len(best) {
			best = body
		}
	}
	return best, best != ""
}

// findArticleBody walks an arbitrary decoded JSON value (object, array,
// or scalar) looking for a string-valued "articleBody" key, recursing
// into nested @graph arrays and objects the way schema.org JSON-LD
// commonly nests entities.
func findArticleBody(v interface{}) string {
	switch t := v.(type) {
	case map[string]interface{}:
		if body, ok := t["articleBody"].(string); ok && strings.TrimSpace(body) != "" {
			return body
		}
		for _, child := range t {
			if s := findArticleBody(child); s != "" {
				return s
			}
		}
	case []interface{}:
		for _, child := range t {
			if s := findArticleBody(child); s != "" {
				return s
			}
		}
	}
	return ""
}
