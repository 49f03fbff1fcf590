package fallback

import (
	"encoding/json"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/kestrelhq/distill/htmldom"
)

// DiscourseArticleBody locates Discourse's `#data-preloaded` element
// (a JSON object whose values are themselves JSON-encoded strings,
// keyed by route — e.g. "topic_14") and returns the longest "cooked"
// (rendered post HTML, stripped to text) field found among them.
func DiscourseArticleBody(doc *htmldom.Document) (string, bool) {
	root := doc.RawNode()
	if root == nil {
		return "", false
	}
	node := htmlquery.FindOne(root, `//*[@id="data-preloaded"]`)
	if node == nil {
		return "", false
	}
	raw := htmlquery.InnerText(node)
	if strings.TrimSpace(raw) == "" {
		raw = htmlquery.SelectAttr(node, "data-preloaded")
	}
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	var outer map[string]string
	if err := json.Unmarshal([]byte(raw), &outer); err != nil {
		return "", false
	}

	best := ""
	for _, encoded := range outer {
		var inner interface{}
		if err := json.Unmarshal([]byte(encoded), &inner); err != nil {
			continue
		}
		for _, cooked := range findCookedFields(inner) {
			if parsed, err := htmlquery.Parse(strings.NewReader(cooked)); err == nil {
				cooked = strings.TrimSpace(htmlquery.InnerText(parsed))
			}
			if len(cooked) > len(best) {
				best = cooked
			}
		}
	}
	return best, best != ""
}

// findCookedFields recursively collects every string value found under
// a "cooked" key (Discourse's rendered-HTML post body field).
func findCookedFields(v interface{}) []string {
	var out []string
	switch t := v.(type) {
	case map[string]interface{}:
		if cooked, ok := t["cooked"].(string); ok && strings.TrimSpace(cooked) != "" {
			out = append(out, cooked)
		}
		for _, child := range t {
			out = append(out, findCookedFields(child)...)
		}
	case []interface{}:
		for _, child := range t {
			out = append(out, findCookedFields(child)...)
		}
	}
	return out
}
