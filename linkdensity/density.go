// Package linkdensity implements the ratio-based link-density tests
// (C6) used throughout pruning and the filtered text walker, grounded
// on the teacher's pkg/utils/dom/analysis.go LinkDensity (anchor text
// length / total text length), extended with precision-mode
// tightening and a table-specific variant per spec.md §4.6/§4.7.
package linkdensity

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

// Of returns the ratio of anchor text length to total text length for
// a node's subtree. An element with no text has a density of 0.
func Of(n *htmldom.Node) float64 {
	total := len(strings.TrimSpace(n.Text()))
	if total == 0 {
		return 0
	}
	linkLen := 0
	n.Query("a").Each(func(_ int, a *htmldom.Node) {
		linkLen += len(strings.TrimSpace(a.Text()))
	})
	return float64(linkLen) / float64(total)
}

// OfTable computes link density for a table, counting only text inside
// <td>/<th> cells as the denominator (a table's caption or wrapper text
// shouldn't dilute the ratio).
func OfTable(table *htmldom.Node) float64 {
	total := 0
	linkLen := 0
	table.Query("td, th").Each(func(_ int, cell *htmldom.Node) {
		cellText := strings.TrimSpace(cell.Text())
		total += len(cellText)
	})
	table.Query("a").Each(func(_ int, a *htmldom.Node) {
		linkLen += len(strings.TrimSpace(a.Text()))
	})
	if total == 0 {
		return 0
	}
	return float64(linkLen) / float64(total)
}

// Threshold returns the max-link-density gate to use, honoring
// FavorPrecision's tightening (spec.md §3 Options, §4.6).
func Threshold(defaultMax float64, favorPrecision bool) float64 {
	if favorPrecision {
		if defaultMax > 0.6 {
			return 0.6
		}
		return defaultMax * 0.75
	}
	return defaultMax
}

// SingleLinkShortCircuitLen is the text-length gate below which a node
// consisting of a single anchor is treated as a link, not content. This
// is spec.md §9's "10 vs 100" open question: the two values are not a
// neutral middle, they flip wholesale on FavorPrecision.
func SingleLinkShortCircuitLen(favorPrecision bool) int {
	if favorPrecision {
		return 10
	}
	return 100
}

// Fails reports whether a node should be treated as link-dense junk: a
// single anchor child whose own text covers virtually all the node's
// text, below the short-circuit length, or an overall density above
// threshold.
func Fails(n *htmldom.Node, maxDensity float64, favorPrecision bool) bool {
	text := strings.TrimSpace(n.Text())
	if len(text) == 0 {
		return false
	}
	anchors := n.Query("a")
	if anchors.Len() == 1 && len(text) < SingleLinkShortCircuitLen(favorPrecision) {
		linkText := strings.TrimSpace(anchors.Text())
		if len(linkText) > 0 && float64(len(linkText))/float64(len(text)) > 0.8 {
			return true
		}
	}
	return Of(n) > Threshold(maxDensity, favorPrecision)
}
