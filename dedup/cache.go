// Package dedup implements a bounded near-duplicate text cache: a fast
// blake3 fingerprint for the common case (exact or near-exact repeats),
// falling back to Levenshtein distance for paragraphs whose
// fingerprints differ but whose text is still substantially similar.
// Used by the baseline rescue (spec.md §4.8 step 3: "deduplicated
// concatenation of <p>/<blockquote>/<pre>/<q>/<code> bodies"); the
// top-level `Deduplicate` option does not use it. Grounded on
// rohmanhakim-docs-crawler's use of blake3 for fast content
// fingerprinting ahead of a more expensive comparison.
package dedup

import (
	"container/list"
	"strings"

	"github.com/agnivade/levenshtein"
	"lukechampine.com/blake3"
)

// similarityThreshold is the maximum normalized edit distance (edit
// distance / max(len)) below which two paragraphs are treated as
// near-duplicates.
const similarityThreshold = 0.15

type entry struct {
	fingerprint [32]byte
	text        string
}

// Cache is a bounded LRU of seen paragraph fingerprints plus their
// normalized text, sized by Options.DedupCacheSize.
type Cache struct {
	capacity int
	order    *list.List
	byFP     map[[32]byte]*list.Element
}

// New returns a Cache capped at capacity entries; capacity ≤ 0 means
// unbounded within a single extraction (callers always pass
// Options.DedupCacheSize, which defaults to 1000).
func New(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		byFP:     map[[32]byte]*list.Element{},
	}
}

func fingerprint(s string) [32]byte {
	return blake3.Sum256([]byte(normalize(s)))
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Seen reports whether text is an exact or near-duplicate of
// previously-seen text, and records it if not.
func (c *Cache) Seen(text string) bool {
	norm := normalize(text)
	if norm == "" {
		return true
	}
	fp := fingerprint(norm)
	if _, ok := c.byFP[fp]; ok {
		c.touch(fp)
		return true
	}
	for el := c.order.Front(); el != nil; el = el.Next() {
		if isNearDuplicate(norm, el.Value.(*entry).text) {
			return true
		}
	}
	c.add(fp, norm)
	return false
}

func (c *Cache) touch(fp [32]byte) {
	if el, ok := c.byFP[fp]; ok {
		c.order.MoveToFront(el)
	}
}

func (c *Cache) add(fp [32]byte, norm string) {
	el := c.order.PushFront(&entry{fingerprint: fp, text: norm})
	c.byFP[fp] = el
	if c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.byFP, oldest.Value.(*entry).fingerprint)
		}
	}
}

func isNearDuplicate(a, b string) bool {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return true
	}
	// Skip the expensive comparison for wildly different lengths: they
	// cannot be near-duplicates under the threshold regardless of content.
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if float64(longer-shorter)/float64(maxLen) > similarityThreshold {
		return false
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(dist)/float64(maxLen) <= similarityThreshold
}
