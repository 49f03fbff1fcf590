package dedup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/distill/dedup"
)

func TestSeenFirstOccurrenceIsFalse(t *testing.T) {
	c := dedup.New(10)
	assert.False(t, c.Seen("A unique sentence of real content."))
}

func TestSeenExactRepeatIsTrue(t *testing.T) {
	c := dedup.New(10)
	text := "A repeated sentence of real content."
	assert.False(t, c.Seen(text))
	assert.True(t, c.Seen(text))
}

func TestSeenCaseAndWhitespaceInsensitive(t *testing.T) {
	c := dedup.New(10)
	assert.False(t, c.Seen("Some   Content   Here"))
	assert.True(t, c.Seen("some content here"))
}

func TestSeenNearDuplicateCaught(t *testing.T) {
	c := dedup.New(10)
	assert.False(t, c.Seen("The quick brown fox jumps over the lazy dog today"))
	// One word changed near the end; should still register as a near-dup
	// given the 0.15 normalized-edit-distance threshold.
	assert.True(t, c.Seen("The quick brown fox jumps over the lazy cat today"))
}

func TestSeenDifferentTextIsNotDuplicate(t *testing.T) {
	c := dedup.New(10)
	assert.False(t, c.Seen("Completely unrelated first sentence about cooking."))
	assert.False(t, c.Seen("An entirely different topic regarding astronomy."))
}

func TestSeenEmptyTextAlwaysTrue(t *testing.T) {
	c := dedup.New(10)
	assert.True(t, c.Seen(""))
	assert.True(t, c.Seen("   "))
}

func TestCacheEvictsOldestBeyondCapacity(t *testing.T) {
	c := dedup.New(2)
	assert.False(t, c.Seen("first entry text"))
	assert.False(t, c.Seen("second entry text"))
	assert.False(t, c.Seen("third entry text"))

	// "first entry text" should have been evicted by capacity 2, so it
	// registers as new again.
	assert.False(t, c.Seen("first entry text"))
}
