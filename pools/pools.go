// Package pools provides sync.Pool-backed reuse of the strings.Builder
// the filtered text walker (walker.Walk) allocates once per call,
// reducing GC pressure under repeated extraction. Adapted from the
// teacher's pkg/pools/pools.go, trimmed to the builder pool: the
// teacher's DocumentPool/ResponseBodyPool exist to reuse goquery
// documents and HTTP response bodies across fetches, both out of scope
// now that fetching is an external collaborator (spec.md §1).
package pools

import (
	"strings"
	"sync"
)

// maxPooledCap caps the capacity of a builder returned to the pool, so
// one unusually large document doesn't pin that memory for the life of
// the process.
const maxPooledCap = 64 * 1024

// StringBuilderPool manages a pool of strings.Builder objects.
type StringBuilderPool struct {
	pool sync.Pool
}

// GlobalStringBuilders is the shared pool the walker package draws from.
var GlobalStringBuilders = NewStringBuilderPool()

// NewStringBuilderPool creates an empty StringBuilderPool.
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} { return &strings.Builder{} },
		},
	}
}

// Get retrieves a reset strings.Builder from the pool.
func (p *StringBuilderPool) Get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

// Put returns sb to the pool, resetting it first. Builders that have
// grown past maxPooledCap are dropped instead of pooled.
func (p *StringBuilderPool) Put(sb *strings.Builder) {
	if sb == nil {
		return
	}
	sb.Reset()
	if sb.Cap() < maxPooledCap {
		p.pool.Put(sb)
	}
}
