package walker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/walker"
)

func TestWalkBasicParagraphs(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><p>First paragraph.</p><p>Second paragraph.</p></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{})
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second paragraph.")
}

func TestWalkExcludesScriptAndNav(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><script>evil()</script><nav>menu</nav><p>real content</p></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{})
	assert.NotContains(t, text, "evil()")
	assert.NotContains(t, text, "menu")
	assert.Contains(t, text, "real content")
}

func TestWalkDedupsLeadingTitle(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><h1>My Article Title</h1><p>body text here</p></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{PageTitle: "My Article Title"})
	assert.NotContains(t, text, "My Article Title")
	assert.Contains(t, text, "body text here")
}

func TestWalkRespectsMaxOutputLen(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><p>` + strings.Repeat("word ", 500) + `</p></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{MaxOutputLen: 50})
	assert.LessOrEqual(t, len(text), 50)
}

func TestWalkTableRendering(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{IncludeTables: true})
	assert.Contains(t, text, "a b")
	assert.Contains(t, text, "c d")
}

func TestWalkOmitsTablesWhenDisabled(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><table><tr><td>secret</td></tr></table><p>kept</p></div>`)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("div"), walker.Options{IncludeTables: false})
	assert.NotContains(t, text, "secret")
	assert.Contains(t, text, "kept")
}

func TestWalkSkipsLinkDenseList(t *testing.T) {
	html := `<section><ul><li><a href="#">` + strings.Repeat("link ", 10) + `</a></li></ul><p>real paragraph text</p></section>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)

	text := walker.Walk(doc.Find("section"), walker.Options{MaxLinkDensity: 0.5})
	assert.Contains(t, text, "real paragraph text")
	assert.NotContains(t, text, "link link")
}

func TestPostProcessCollapsesWhitespace(t *testing.T) {
	in := "hello   world  .\n\n\n\nnext line"
	out := walker.PostProcess(in)
	assert.NotContains(t, out, "   ")
	assert.NotContains(t, out, "\n\n\n")
	assert.Contains(t, out, "hello world.")
}
