package pruner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/pruner"
)

func TestPruneRemovesImagesUnlessIncluded(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><p>text</p><img src="a.png"></div>`)
	require.NoError(t, err)
	n := doc.Find("div")

	pruner.PruneUnwantedSections(n, pruner.Options{IncludeImages: false})
	assert.Equal(t, 0, n.Query("img").Len())
}

func TestPruneKeepsImagesWhenIncluded(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><p>text</p><img src="a.png"></div>`)
	require.NoError(t, err)
	n := doc.Find("div")

	pruner.PruneUnwantedSections(n, pruner.Options{IncludeImages: true})
	assert.Equal(t, 1, n.Query("img").Len())
}

func TestPruneTailTextPreservedOnRemoval(t *testing.T) {
	doc, err := htmldom.ParseString(`<div><p>keep this <img src="a.png"> and this too</p></div>`)
	require.NoError(t, err)
	n := doc.Find("div")

	pruner.PruneUnwantedSections(n, pruner.Options{IncludeImages: false})
	assert.Contains(t, n.Text(), "keep this")
	assert.Contains(t, n.Text(), "and this too")
}

func TestPruneBackupRestoresWhenTooDestructive(t *testing.T) {
	// A subtree that's almost entirely boilerplate-class content:
	// the overall discard pass would remove nearly everything, so the
	// backup/restore guard should undo it.
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString(`<div class="advertisement">ad content here that is reasonably long</div>`)
	}
	html := `<div>` + sb.String() + `<p>a single short real sentence</p></div>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)
	n := doc.Find("div").First()

	before := len(strings.TrimSpace(n.Text()))
	pruner.PruneUnwantedSections(n, pruner.Options{})
	after := len(strings.TrimSpace(n.Text()))

	// The advertisement divs hold 780 of the 808 trimmed characters, so
	// the overall discard pass would leave 28 (at most 808/7) and is
	// undone; no later pass removes anything from this subtree.
	assert.Equal(t, before, after)
}

func TestPruneLinkDensityRemovesOnlyTheDenseList(t *testing.T) {
	var denseList strings.Builder
	denseList.WriteString(`<ul class="dense">`)
	for i := 0; i < 5; i++ {
		denseList.WriteString(`<li><a href="#">` + strings.Repeat("link ", 10) + `</a></li>`)
	}
	denseList.WriteString("</ul>")

	html := "<div>" + denseList.String() +
		`<ul class="plain"><li>` + strings.Repeat("plain list text ", 10) + `</li></ul></div>`
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)
	n := doc.Find("div")

	pruner.PruneUnwantedSections(n, pruner.Options{MaxLinkDensity: 0.8})
	assert.Equal(t, 0, n.Query("ul.dense").Len())
	assert.Equal(t, 1, n.Query("ul.plain").Len())
}
