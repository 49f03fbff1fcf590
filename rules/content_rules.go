package rules

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/patterns"
)

var contentBodyTags = map[string]bool{"article": true, "div": true, "main": true, "section": true}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// ContentRules is the prioritized list of spec.md §4.2: six ordered
// predicates, first match wins (subject to the ancestor/nesting/
// min-content checks applied by the finder, C7).
var ContentRules = []Rule{
	{
		Name: "article-body-markers",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			classID := n.ClassAndID()
			if tag == "td" {
				return strings.Contains(classID, "storybody")
			}
			if !contentBodyTags[tag] {
				return false
			}
			if v, ok := n.Attr("itemprop"); ok && v == "articleBody" {
				return true
			}
			return containsAny(classID, patterns.ArticleBodyMarkers)
		},
	},
	{
		Name: "bare-semantic-tags",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			return tag == "article" || tag == "story"
		},
	},
	{
		Name: "story-content-markers",
		Match: func(n *htmldom.Node) bool {
			if !contentBodyTags[n.TagName()] {
				return false
			}
			classID := n.ClassAndID()
			if role, ok := n.Attr("role"); ok && strings.EqualFold(role, "article") {
				return true
			}
			return containsAny(classID, patterns.StoryContentMarkers)
		},
	},
	{
		Name: "generic-content-ids",
		Match: func(n *htmldom.Node) bool {
			if !contentBodyTags[n.TagName()] {
				return false
			}
			classID := n.ClassAndID()
			if containsAny(classID, patterns.GenericContentMarkers) {
				return true
			}
			id, _ := n.Attr("id")
			class := n.Class()
			return strings.EqualFold(strings.TrimSpace(id), "content") || hasExactClassToken(class, "content")
		},
	},
	{
		Name: "main-element-markers",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			if tag == "main" {
				return true
			}
			if tag != "article" && tag != "div" && tag != "section" {
				return false
			}
			id, _ := n.Attr("id")
			class := n.Class()
			role, _ := n.Attr("role")
			return startsWithMain(id) || startsWithMain(class) || startsWithMain(role)
		},
	},
	{
		Name: "low-priority-contains-content",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			if tag != "div" && tag != "section" && tag != "td" {
				return false
			}
			classID := n.ClassAndID()
			if !strings.Contains(classID, patterns.LowPriorityContentToken) {
				return false
			}
			return !containsAny(classID, patterns.OverallDiscardPatterns)
		},
	},
}

func startsWithMain(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "main")
}

func hasExactClassToken(class, token string) bool {
	for _, t := range strings.Fields(class) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
