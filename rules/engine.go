// Package rules implements the selector-rule engine (C3) and the
// prioritized rule sets (C4) that drive content-finding, discarding and
// comment-extraction. A Rule is a pure predicate over a node; rules are
// kept in fixed-order slices — the simplest abstraction Go offers for
// the teacher's first-class-function-pointer selector design (teacher:
// CustomExtractor/FieldExtractor selector cascades), generalized here
// from per-site tables to the spec's single universal rule list.
package rules

import "github.com/kestrelhq/distill/htmldom"

// Rule is a named predicate against a single node.
type Rule struct {
	Name  string
	Match func(n *htmldom.Node) bool
}

// Query walks every descendant of root in document order and returns
// the first node for which rule matches, or an empty Node.
func Query(root *htmldom.Node, rule Rule) *htmldom.Node {
	var found *htmldom.Node
	root.Descendants().Each(func(_ int, n *htmldom.Node) {
		if found != nil {
			return
		}
		if rule.Match(n) {
			found = n
		}
	})
	if found == nil {
		return &htmldom.Node{}
	}
	return found
}

// QueryAll walks every descendant of root in document order and
// returns every node for which rule matches.
func QueryAll(root *htmldom.Node, rule Rule) []*htmldom.Node {
	var out []*htmldom.Node
	root.Descendants().Each(func(_ int, n *htmldom.Node) {
		if rule.Match(n) {
			out = append(out, n)
		}
	})
	return out
}

// FirstMatch returns the first rule in an ordered list that matches n,
// and the rule's index, or (-1, false) if none match. This implements
// the "first matching rule wins" semantics of spec.md §3/§4.2.
func FirstMatch(n *htmldom.Node, rs []Rule) (int, bool) {
	for i, r := range rs {
		if r.Match(n) {
			return i, true
		}
	}
	return -1, false
}

// AnyMatch reports whether any rule in an ordered list matches n — the
// "all matching rules apply" semantics used for discard rule sets.
func AnyMatch(n *htmldom.Node, rs []Rule) bool {
	_, ok := FirstMatch(n, rs)
	return ok
}
