package htmldom

import (
	"reflect"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// reflectPointer returns the runtime address of h's backing struct.
// Using reflect (rather than the unsafe package) keeps this facade free
// of unsafe code for a value that is only ever used as an opaque,
// in-process comparison key.
func reflectPointer(h *html.Node) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// NodeID is an opaque, stable handle for a single DOM node: sufficient
// for equality, hashing and use as a map key, so the extractor can mark
// nodes "processed" (the ExtractionState "done" set) without mutating
// them. It is backed by the underlying *html.Node pointer goquery
// already treats as node identity.
type NodeID uintptr

// Node is a possibly-empty ordered collection of DOM nodes, always
// associated with a single Document — goquery's own Selection type,
// wrapped so callers go through this package rather than reaching for
// goquery directly.
type Node struct {
	Sel *goquery.Selection
}

// ID returns the identity of the first node in the selection, or 0 for
// an empty selection. NodeIDs are only ever compared for equality
// within a single process run, never persisted or serialized, so a
// pointer-derived integer is a safe, allocation-free handle.
func (n *Node) ID() NodeID {
	if n == nil || n.Sel.Length() == 0 {
		return 0
	}
	return NodeID(reflectPointer(n.Sel.Get(0)))
}

// Raw exposes the first node's underlying *html.Node, for callers (the
// filtered text walker) that need fine-grained depth-first control
// golang.org/x/net/html's sibling/child pointers give directly, rather
// than going through goquery's selection-returning API for every step.
func (n *Node) Raw() *html.Node {
	if n.Len() == 0 {
		return nil
	}
	return n.Sel.Get(0)
}

// WrapRaw wraps a bare *html.Node as a single-node Node, for callers
// walking raw sibling/child pointers that need the higher-level
// helpers (ClassAndID, Text, Attr, …) for a specific node.
func WrapRaw(h *html.Node) *Node {
	if h == nil {
		return &Node{Sel: goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode}).Selection}
	}
	return &Node{Sel: wrapNode(h)}
}

// Len returns the number of nodes in the selection.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.Sel.Length()
}

// TagName returns the lowercased tag name of the first node.
func (n *Node) TagName() string {
	if n.Len() == 0 {
		return ""
	}
	return strings.ToLower(goquery.NodeName(n.Sel))
}

// Attr returns an attribute value and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	return n.Sel.Attr(name)
}

// AttrOr returns an attribute value, or a default if absent.
func (n *Node) AttrOr(name, def string) string {
	return n.Sel.AttrOr(name, def)
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Sel.Attr(name)
	return ok
}

// SetAttr sets an attribute on every node in the selection.
func (n *Node) SetAttr(name, value string) {
	n.Sel.SetAttr(name, value)
}

// RemoveAttr removes an attribute from every node in the selection.
func (n *Node) RemoveAttr(name string) {
	n.Sel.RemoveAttr(name)
}

// Attrs returns every attribute name/value pair on the first node.
func (n *Node) Attrs() map[string]string {
	out := map[string]string{}
	if n.Len() == 0 {
		return out
	}
	node := n.Sel.Get(0)
	if node.Type != html.ElementNode {
		return out
	}
	for _, a := range node.Attr {
		out[a.Key] = a.Val
	}
	return out
}

// Class returns the raw class attribute, space-joined tokens preserved.
func (n *Node) Class() string {
	return n.AttrOr("class", "")
}

// ClassAndID returns the concatenation of class and id attributes,
// lowercased, the way the teacher's pattern-matching helpers expect it.
func (n *Node) ClassAndID() string {
	return strings.ToLower(n.Class() + " " + n.AttrOr("id", ""))
}

// First returns a Node wrapping just the first element.
func (n *Node) First() *Node { return &Node{Sel: n.Sel.First()} }

// Last returns a Node wrapping just the last element.
func (n *Node) Last() *Node { return &Node{Sel: n.Sel.Last()} }

// Parent returns the parent element.
func (n *Node) Parent() *Node { return &Node{Sel: n.Sel.Parent()} }

// Parents returns all ancestor elements, nearest first.
func (n *Node) Parents() *Node { return &Node{Sel: n.Sel.Parents()} }

// Children returns the direct element children (text nodes excluded).
func (n *Node) Children() *Node { return &Node{Sel: n.Sel.Children()} }

// NextElementSibling returns the next *element* sibling, skipping text
// and comment nodes.
func (n *Node) NextElementSibling() *Node { return &Node{Sel: n.Sel.Next()} }

// PrevElementSibling returns the previous *element* sibling.
func (n *Node) PrevElementSibling() *Node { return &Node{Sel: n.Sel.Prev()} }

// Descendants returns every descendant element, in document order.
func (n *Node) Descendants() *Node { return &Node{Sel: n.Sel.Find("*")} }

// Query runs a CSS selector scoped to this selection's subtrees.
func (n *Node) Query(selector string) *Node { return &Node{Sel: n.Sel.Find(selector)} }

// Each calls fn for every node in the selection, in document order.
func (n *Node) Each(fn func(int, *Node)) {
	n.Sel.Each(func(i int, s *goquery.Selection) {
		fn(i, &Node{Sel: s})
	})
}

// Eq returns a Node wrapping the i'th node in the selection.
func (n *Node) Eq(i int) *Node { return &Node{Sel: n.Sel.Eq(i)} }

// OwnText returns the node's own text: concatenated text of its direct
// text-node children, before any child element.
func (n *Node) OwnText() string {
	if n.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for c := n.Sel.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else {
			break
		}
	}
	return sb.String()
}

// Text returns the concatenated subtree text.
func (n *Node) Text() string { return n.Sel.Text() }

// TailText returns the text immediately following this node's closing
// tag, relative to its parent (the text node that is this node's next
// sibling, if any).
func (n *Node) TailText() string {
	if n.Len() == 0 {
		return ""
	}
	sib := n.Sel.Get(0).NextSibling
	if sib != nil && sib.Type == html.TextNode {
		return sib.Data
	}
	return ""
}

// SetTailText appends text to the text node immediately following this
// node (creating that node if there is none), used by tail-preservation
// during pruning.
func (n *Node) SetTailText(text string) {
	if n.Len() == 0 {
		return
	}
	node := n.Sel.Get(0)
	sib := node.NextSibling
	if sib != nil && sib.Type == html.TextNode {
		sib.Data += text
		return
	}
	if text == "" {
		return
	}
	newNode := &html.Node{Type: html.TextNode, Data: text}
	if node.Parent != nil {
		node.Parent.InsertBefore(newNode, node.NextSibling)
	}
}

// Html returns the inner HTML of the first node.
func (n *Node) Html() string {
	h, _ := n.Sel.Html()
	return h
}

// SetHtml replaces the inner HTML of every node in the selection. Used
// by the pruner's backup/restore machinery (spec.md §3: a pruning pass
// that would remove more than 6/7 of a subtree's text is undone).
func (n *Node) SetHtml(html string) {
	n.Sel.SetHtml(html)
}

// Rename changes the tag name of every node in the selection in place.
func (n *Node) Rename(tag string) {
	n.Sel.Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node.Type == html.ElementNode {
			node.Data = tag
			node.DataAtom = 0
		}
	})
}

// Remove detaches the selection from the document, optionally
// relocating its tail text first so no text is silently lost (spec
// §3 tail-preservation invariant).
func (n *Node) Remove(keepTail bool) {
	n.Sel.Each(func(_ int, s *goquery.Selection) {
		if keepTail {
			relocateTail(s)
		}
		s.Remove()
	})
}

// relocateTail moves a node's tail text to its previous element
// sibling's tail, or if none, to its parent's tail.
func relocateTail(s *goquery.Selection) {
	node := &Node{Sel: s}
	tail := node.TailText()
	if tail == "" {
		return
	}
	tailNode := s.Get(0).NextSibling
	prevElem := node.PrevElementSibling()
	if prevElem.Len() > 0 {
		prevElem.SetTailText(tail)
	} else if parent := node.Parent(); parent.Len() > 0 {
		parent.appendOwnTrailingText(tail)
	} else {
		return
	}
	tailNode.Parent.RemoveChild(tailNode)
}

// appendOwnTrailingText appends text to the end of this node's own
// text content (used when a removed node has no previous sibling, so
// its tail becomes trailing text of the parent itself).
func (n *Node) appendOwnTrailingText(text string) {
	if n.Len() == 0 || text == "" {
		return
	}
	node := n.Sel.Get(0)
	newNode := &html.Node{Type: html.TextNode, Data: text}
	node.AppendChild(newNode)
}

// Strip removes the element but keeps its children, splicing them into
// the parent in place.
func (n *Node) Strip() {
	n.Sel.Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		parent := node.Parent
		if parent == nil {
			return
		}
		var next *html.Node
		for c := node.FirstChild; c != nil; c = next {
			next = c.NextSibling
			node.RemoveChild(c)
			parent.InsertBefore(c, node)
		}
		parent.RemoveChild(node)
	})
}

// Clone deep-clones every node in the selection.
func (n *Node) Clone() *Node { return &Node{Sel: n.Sel.Clone()} }

// AddClass adds a class token.
func (n *Node) AddClass(class string) { n.Sel.AddClass(class) }

// HasClass reports whether any node in the selection carries the class.
func (n *Node) HasClass(class string) bool { return n.Sel.HasClass(class) }

// wrapNode wraps a bare *html.Node as a single-node Selection, for
// callers that need to hand a raw sibling/child pointer back through
// the facade (e.g. tail-text relocation).
func wrapNode(h *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(h).Selection
}
