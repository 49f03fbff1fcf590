package fallback_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/fallback"
	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/walker"
)

func splitBodyChunk(class string) string {
	return `<div class="` + class + `">` + strings.Repeat("real paragraph content here. ", 15) + `</div>`
}

func TestSplitBodyMergeCombinesMatchingSiblings(t *testing.T) {
	html := `<article>` + splitBodyChunk("article__body") + splitBodyChunk("article__body") + `</article>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	// A baseline sized so the merged output (~900 chars from two chunks)
	// falls within the accepted 1.2x-4x band.
	baseline := strings.Repeat("baseline text ", 30)
	merged, ok := fallback.SplitBodyMerge(doc.Find("article"), baseline, 0, false, walker.Options{})
	require.True(t, ok)
	assert.Greater(t, len(merged), len(baseline))
}

func TestSplitBodyMergeRequiresAtLeastTwoChunks(t *testing.T) {
	html := `<article>` + splitBodyChunk("article__body") + `<div class="other">irrelevant</div></article>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	_, ok := fallback.SplitBodyMerge(doc.Find("article"), "", 0, false, walker.Options{})
	assert.False(t, ok)
}

func TestSplitBodyMergeEntryContentRequiresRelaxedFallback(t *testing.T) {
	html := `<article>` + splitBodyChunk("entry-content") + splitBodyChunk("entry-content") + `</article>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	_, ok := fallback.SplitBodyMerge(doc.Find("article"), "", 0, false, walker.Options{})
	assert.False(t, ok)

	merged, ok := fallback.SplitBodyMerge(doc.Find("article"), "", 0, true, walker.Options{})
	assert.True(t, ok)
	assert.NotEmpty(t, merged)
}

func TestSplitBodyMergeRejectsWhenTooSmallRelativeToBaseline(t *testing.T) {
	html := `<article>` + splitBodyChunk("article__body") + splitBodyChunk("article__body") + `</article>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	longBaseline := strings.Repeat("baseline text that is already long enough. ", 200)
	_, ok := fallback.SplitBodyMerge(doc.Find("article"), longBaseline, 0, false, walker.Options{})
	assert.False(t, ok)
}

func TestSplitBodyMergeRejectsWhenOverMaxExtractedLen(t *testing.T) {
	html := `<article>` + splitBodyChunk("article__body") + splitBodyChunk("article__body") + `</article>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	baseline := strings.Repeat("baseline text ", 30)
	_, ok := fallback.SplitBodyMerge(doc.Find("article"), baseline, 10, false, walker.Options{})
	assert.False(t, ok)
}
