package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/distill/sanitize"
)

func TestHTMLStripsScriptTags(t *testing.T) {
	out := sanitize.HTML(`<p>text</p><script>evil()</script>`, false, false)
	assert.Contains(t, out, "text")
	assert.NotContains(t, out, "evil()")
	assert.NotContains(t, out, "<script")
}

func TestHTMLKeepsAllowedStructuralTags(t *testing.T) {
	out := sanitize.HTML(`<h2>Heading</h2><p>para</p><blockquote>quote</blockquote>`, false, false)
	assert.Contains(t, out, "<h2>")
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "<blockquote>")
}

func TestHTMLDropsLinksWhenNotIncluded(t *testing.T) {
	out := sanitize.HTML(`<p><a href="https://example.com">link</a></p>`, false, false)
	assert.NotContains(t, out, "<a")
	assert.Contains(t, out, "link")
}

func TestHTMLKeepsLinksWhenIncluded(t *testing.T) {
	out := sanitize.HTML(`<p><a href="https://example.com">link</a></p>`, true, false)
	assert.Contains(t, out, "<a")
	assert.Contains(t, out, "href")
}

func TestHTMLDropsImagesWhenNotIncluded(t *testing.T) {
	out := sanitize.HTML(`<p>text</p><img src="a.png">`, false, false)
	assert.NotContains(t, out, "<img")
}

func TestHTMLKeepsImagesWhenIncluded(t *testing.T) {
	out := sanitize.HTML(`<p>text</p><img src="a.png" alt="desc">`, false, true)
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, "src=")
}

func TestHTMLStripsEventHandlerAttributes(t *testing.T) {
	out := sanitize.HTML(`<p onclick="evil()">text</p>`, false, false)
	assert.NotContains(t, out, "onclick")
}
