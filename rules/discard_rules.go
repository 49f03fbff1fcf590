package rules

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/patterns"
)

// OverallDiscardRules are always applied: boilerplate class/id
// patterns, hidden elements, and the unconditional removal of
// structural <header>/<nav>/<aside>, per spec.md §4.3.
var OverallDiscardRules = []Rule{
	{
		Name: "boilerplate-class",
		Match: func(n *htmldom.Node) bool {
			return patterns.IsBoilerplateClass(n.ClassAndID()) ||
				containsAny(n.ClassAndID(), patterns.OverallDiscardPatterns)
		},
	},
	{
		Name: "hidden-element",
		Match: func(n *htmldom.Node) bool {
			if style, ok := n.Attr("style"); ok {
				s := strings.ReplaceAll(strings.ToLower(style), " ", "")
				if strings.Contains(s, "display:none") {
					return true
				}
			}
			if v, ok := n.Attr("aria-hidden"); ok && v == "true" {
				return true
			}
			if n.HasAttr("hidden") {
				return true
			}
			return patterns.HiddenClassRE.MatchString(n.Class())
		},
	},
	{
		Name: "structural-boilerplate-tag",
		Match: func(n *htmldom.Node) bool {
			return patterns.StructuralBoilerplateTags[n.TagName()]
		},
	},
}

// PrecisionDiscardRules are applied in addition when FavorPrecision.
var PrecisionDiscardRules = []Rule{
	{
		Name: "precision-patterns",
		Match: func(n *htmldom.Node) bool {
			return containsAny(n.ClassAndID(), patterns.PrecisionDiscardPatterns)
		},
	},
}

// TeaserDiscardRules are applied unless FavorRecall.
var TeaserDiscardRules = []Rule{
	{
		Name: "teaser-patterns",
		Match: func(n *htmldom.Node) bool {
			return containsAny(n.ClassAndID(), patterns.TeaserDiscardPatterns)
		},
	},
}

// ImageDiscardRules remove images unless IncludeImages is set.
var ImageDiscardRules = []Rule{
	{
		Name: "all-images",
		Match: func(n *htmldom.Node) bool {
			return n.TagName() == "img"
		},
	},
}
