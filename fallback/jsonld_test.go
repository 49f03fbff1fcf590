package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/fallback"
	"github.com/kestrelhq/distill/htmldom"
)

func TestJSONLDArticleBodyFindsTopLevelField(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head>
		<script type="application/ld+json">{"@type":"Article","articleBody":"The real article text goes here."}</script>
	</head><body></body></html>`)
	require.NoError(t, err)

	body, ok := fallback.JSONLDArticleBody(doc)
	require.True(t, ok)
	assert.Equal(t, "The real article text goes here.", body)
}

func TestJSONLDArticleBodyFindsNestedInGraph(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head>
		<script type="application/ld+json">{"@graph":[{"@type":"WebPage"},{"@type":"Article","articleBody":"Nested body text."}]}</script>
	</head><body></body></html>`)
	require.NoError(t, err)

	body, ok := fallback.JSONLDArticleBody(doc)
	require.True(t, ok)
	assert.Equal(t, "Nested body text.", body)
}

func TestJSONLDArticleBodyPicksLongestAcrossBlocks(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head>
		<script type="application/ld+json">{"articleBody":"short"}</script>
		<script type="application/ld+json">{"articleBody":"a much longer article body than the other one"}</script>
	</head><body></body></html>`)
	require.NoError(t, err)

	body, ok := fallback.JSONLDArticleBody(doc)
	require.True(t, ok)
	assert.Equal(t, "a much longer article body than the other one", body)
}

func TestJSONLDArticleBodyMissingReturnsFalse(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head><script type="application/ld+json">{"@type":"WebSite"}</script></head><body></body></html>`)
	require.NoError(t, err)

	_, ok := fallback.JSONLDArticleBody(doc)
	assert.False(t, ok)
}

func TestJSONLDArticleBodyInvalidJSONSkipped(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head><script type="application/ld+json">not json at all</script></head><body></body></html>`)
	require.NoError(t, err)

	_, ok := fallback.JSONLDArticleBody(doc)
	assert.False(t, ok)
}
