package fallback_test

import (
	"html"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/fallback"
	"github.com/kestrelhq/distill/htmldom"
)

func discoursePreloadedHTML(t *testing.T, outer, inner string) *htmldom.Document {
	t.Helper()
	escaped := html.EscapeString(outer)
	full := `<html><body><div id="data-preloaded" data-preloaded="` + escaped + `"></div></body></html>`
	doc, err := htmldom.ParseString(full)
	require.NoError(t, err)
	_ = inner
	return doc
}

func TestDiscourseArticleBodyFindsCookedField(t *testing.T) {
	outer := `{"topic_14":"{\"post_stream\":{\"posts\":[{\"cooked\":\"<p>The rendered post body.</p>\"}]}}"}`
	doc := discoursePreloadedHTML(t, outer, "")

	body, ok := fallback.DiscourseArticleBody(doc)
	require.True(t, ok)
	assert.Contains(t, body, "rendered post body")
}

func TestDiscourseArticleBodyPicksLongestCooked(t *testing.T) {
	outer := `{"topic_14":"{\"posts\":[{\"cooked\":\"short\"},{\"cooked\":\"a considerably longer cooked post body text\"}]}"}`
	doc := discoursePreloadedHTML(t, outer, "")

	body, ok := fallback.DiscourseArticleBody(doc)
	require.True(t, ok)
	assert.Equal(t, "a considerably longer cooked post body text", body)
}

func TestDiscourseArticleBodyNoContainerReturnsFalse(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><article>no discourse markup</article></body></html>`)
	require.NoError(t, err)

	_, ok := fallback.DiscourseArticleBody(doc)
	assert.False(t, ok)
}

func TestDiscourseArticleBodyInvalidOuterJSONReturnsFalse(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div id="data-preloaded">not json</div></body></html>`)
	require.NoError(t, err)

	_, ok := fallback.DiscourseArticleBody(doc)
	assert.False(t, ok)
}
