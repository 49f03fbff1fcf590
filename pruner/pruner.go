// Package pruner implements the pruner (C9): rule-driven removal with
// tail-text preservation and optional backup/restore when a pass would
// lose more than 6/7 of a subtree's text. Grounded on the teacher's
// CleanTags/removeUnlessContent (comma score, input/paragraph ratio,
// image count, link density vs weight) and RemoveEmpty, generalized
// into the ordered pass list of spec.md §4.6.
package pruner

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/linkdensity"
	"github.com/kestrelhq/distill/rules"
)

// Options configures PruneUnwantedSections.
type Options struct {
	IncludeImages  bool
	IncludeTables  bool
	FavorRecall    bool
	FavorPrecision bool
	MaxLinkDensity float64
}

// backupRestoreRatio: a pass whose post/pre trimmed-text-length ratio
// is ≤ this is undone (spec.md §3: "≤ 1/7 of the pre-pass count").
const backupRestoreRatio = 1.0 / 7.0

func trimmedLen(n *htmldom.Node) int {
	return len(strings.TrimSpace(n.Text()))
}

// withBackup runs pass against subtree, restoring subtree's original
// HTML if the pass destroyed more than 6/7 of its text.
func withBackup(subtree *htmldom.Node, pass func()) {
	before := trimmedLen(subtree)
	backupHTML := subtree.Html()
	pass()
	after := trimmedLen(subtree)
	if before > 0 && float64(after) <= float64(before)*backupRestoreRatio {
		subtree.SetHtml(backupHTML)
	}
}

// PruneUnwantedSections runs the ordered pass list of spec.md §4.6
// against subtree in place.
func PruneUnwantedSections(subtree *htmldom.Node, opts Options) {
	withBackup(subtree, func() {
		removeMatching(subtree, rules.OverallDiscardRules)
	})

	if !opts.IncludeImages {
		removeMatching(subtree, rules.ImageDiscardRules)
	}

	if !opts.FavorRecall {
		removeMatching(subtree, rules.TeaserDiscardRules)
	}
	if opts.FavorPrecision {
		removeMatching(subtree, rules.PrecisionDiscardRules)
	}

	maxDensity := opts.MaxLinkDensity
	if maxDensity == 0 {
		maxDensity = 0.8
	}

	linkDensityPass(subtree, "div", maxDensity, opts)
	linkDensityPass(subtree, "div", maxDensity, opts)
	linkDensityPass(subtree, "ul, ol, dl", maxDensity, opts)
	linkDensityPass(subtree, "p", maxDensity, opts)

	if opts.IncludeTables || opts.FavorPrecision {
		tableLinkDensityPass(subtree, maxDensity, opts)
	}

	if opts.FavorPrecision {
		stripTrailingHeadings(subtree)
		linkDensityPass(subtree, "h1, h2, h3, h4, h5, h6, blockquote", maxDensity, opts)
	}
}

func removeMatching(subtree *htmldom.Node, ruleSet []rules.Rule) {
	matches := []*htmldom.Node{}
	subtree.Descendants().Each(func(_ int, n *htmldom.Node) {
		if rules.AnyMatch(n, ruleSet) {
			matches = append(matches, n)
		}
	})
	for _, m := range matches {
		m.Remove(true)
	}
}

// backtrackChildGate is the minimum child count for the link-density
// backtracking removal, spec.md §9: flips 1 (precision) vs 3 (default).
func backtrackChildGate(favorPrecision bool) int {
	if favorPrecision {
		return 1
	}
	return 3
}

// backtrackLenThreshold is the text-length upper bound for
// backtracking removal: 200 (precision) vs 100 (default).
func backtrackLenThreshold(favorPrecision bool) int {
	if favorPrecision {
		return 200
	}
	return 100
}

func linkDensityPass(subtree *htmldom.Node, selector string, maxDensity float64, opts Options) {
	matches := []*htmldom.Node{}
	subtree.Query(selector).Each(func(_ int, n *htmldom.Node) {
		matches = append(matches, n)
	})

	var toRemove, backtracked []*htmldom.Node
	for _, n := range matches {
		if linkdensity.Fails(n, maxDensity, opts.FavorPrecision) {
			toRemove = append(toRemove, n)
			continue
		}
		if backtrack(n, opts) {
			backtracked = append(backtracked, n)
		}
	}

	// Suppress backtracking that would remove all siblings (spec.md §7).
	if len(toRemove)+len(backtracked) < len(matches) {
		toRemove = append(toRemove, backtracked...)
	}
	for _, n := range toRemove {
		n.Remove(true)
	}
}

// backtrack implements spec.md §4.6's inconclusive-density
// backtracking: remove if the element has non-empty anchors, a text
// length in (0, threshold), and at least the child-count gate.
func backtrack(n *htmldom.Node, opts Options) bool {
	text := strings.TrimSpace(n.Text())
	textLen := len(text)
	threshold := backtrackLenThreshold(opts.FavorPrecision)
	if textLen == 0 || textLen >= threshold {
		return false
	}
	anchors := n.Query("a")
	if anchors.Len() == 0 {
		return false
	}
	anchorText := strings.TrimSpace(anchors.Text())
	if anchorText == "" {
		return false
	}
	return n.Children().Len() >= backtrackChildGate(opts.FavorPrecision)
}

func tableLinkDensityPass(subtree *htmldom.Node, maxDensity float64, opts Options) {
	var toRemove []*htmldom.Node
	subtree.Query("table").Each(func(_ int, t *htmldom.Node) {
		if linkdensity.OfTable(t) > linkdensity.Threshold(maxDensity, opts.FavorPrecision) {
			toRemove = append(toRemove, t)
		}
	})
	for _, t := range toRemove {
		t.Remove(true)
	}
}

// stripTrailingHeadings removes trailing <h1>-<h6>/<summary> elements
// from the end of the subtree, stopping at the first non-heading
// sibling (spec.md §4.6, precision-only).
func stripTrailingHeadings(subtree *htmldom.Node) {
	children := subtree.Children()
	n := children.Len()
	for i := n - 1; i >= 0; i-- {
		c := children.Eq(i)
		tag := c.TagName()
		if isHeadingTag(tag) {
			c.Remove(true)
			continue
		}
		break
	}
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "summary":
		return true
	}
	return false
}
