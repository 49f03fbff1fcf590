package distill_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill"
)

func articleHTML(paragraphCount int) string {
	var sb strings.Builder
	sb.WriteString(`<html><head><title>A Well Written Article Title</title>
		<meta property="og:site_name" content="Example Daily">
	</head><body>
		<nav><a href="/">Home</a><a href="/about">About</a></nav>
		<article>
			<h1>A Well Written Article Title</h1>
			<div class="byline">By Jane Doe</div>`)
	for i := 0; i < paragraphCount; i++ {
		sb.WriteString("<p>This is a genuinely long sentence of article body text that carries real information about the subject at hand and continues on for a while. </p>")
	}
	sb.WriteString(`</article>
		<footer>copyright 2026</footer>
	</body></html>`)
	return sb.String()
}

func TestExtractReturnsArticleContent(t *testing.T) {
	res, err := distill.Extract(articleHTML(10))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Contains(t, res.ContentText, "genuinely long sentence")
	assert.NotContains(t, res.ContentText, "copyright 2026")
	assert.Equal(t, "A Well Written Article Title", res.Metadata.Title)
	assert.Equal(t, "Jane Doe", res.Metadata.Author)
	assert.Equal(t, "Example Daily", res.Metadata.Sitename)
}

func TestExtractDedupsLeadingH1FromBody(t *testing.T) {
	res, err := distill.Extract(articleHTML(10))
	require.NoError(t, err)

	assert.NotContains(t, res.ContentText, "A Well Written Article Title")
}

func TestExtractEmptyDocumentProducesWarning(t *testing.T) {
	res, err := distill.Extract(`<html><head></head><body></body></html>`)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Warnings)
	assert.True(t, res.IsEmpty())
}

func TestExtractUnparsableInputDoesNotError(t *testing.T) {
	res, err := distill.Extract("")
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestExtractBytesTranscodesAndExtracts(t *testing.T) {
	res, err := distill.ExtractBytes([]byte(articleHTML(10)))
	require.NoError(t, err)
	assert.Contains(t, res.ContentText, "genuinely long sentence")
}

func TestExtractWithOptionsIncludeImages(t *testing.T) {
	html := `<html><head><title>Title</title></head><body><article>
		<h1>Title</h1>` + strings.Repeat("<p>This is a genuinely long sentence of article body text that carries real information about the subject at hand and continues on for a while. </p>", 10) + `
		<img src="/images/photo.png" alt="a photo">
	</article></body></html>`

	opts := distill.DefaultOptions()
	opts.IncludeImages = true
	res, err := distill.ExtractWithOptions(html, opts)
	require.NoError(t, err)
	require.Len(t, res.Images, 1)
	assert.Equal(t, "photo.png", res.Images[0].Filename)
}

func TestExtractWithOptionsOutputMarkdown(t *testing.T) {
	opts := distill.DefaultOptions()
	opts.OutputMarkdown = true
	res, err := distill.ExtractWithOptions(articleHTML(10), opts)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ContentMarkdown)
}

func TestExtractWithOptionsIncludeLinksKeepsAnchorsInHTML(t *testing.T) {
	html := `<html><head><title>Title</title></head><body><article>
		<h1>Title</h1>` + strings.Repeat(`<p>This is a genuinely long sentence of article body text with a <a href="https://example.com">link</a> inside it, and it continues on. </p>`, 10) + `
	</article></body></html>`

	opts := distill.DefaultOptions()
	opts.IncludeLinks = true
	res, err := distill.ExtractWithOptions(html, opts)
	require.NoError(t, err)
	assert.Contains(t, res.ContentHTML, "<a")
}

func TestExtractWithOptionsFavorPrecisionAndRecallMutuallyExclusive(t *testing.T) {
	opts := distill.DefaultOptions()
	opts.FavorPrecision = true
	opts.FavorRecall = true
	res, err := distill.ExtractWithOptions(articleHTML(10), opts)
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestExtractResultFormatMarkdownIncludesMetadataHeader(t *testing.T) {
	res, err := distill.Extract(articleHTML(10))
	require.NoError(t, err)

	out := res.FormatMarkdown()
	assert.Contains(t, out, "# A Well Written Article Title")
	assert.Contains(t, out, "**Author:** Jane Doe")
	assert.Contains(t, out, "## Content")
}

func TestExtractResultHasImagesFalseWhenNone(t *testing.T) {
	res, err := distill.Extract(articleHTML(10))
	require.NoError(t, err)
	assert.False(t, res.HasImages())
}

func TestExtractIncludeCommentsExtractsCommentThread(t *testing.T) {
	html := `<html><head><title>Title</title></head><body>
		<article><h1>Title</h1>` + strings.Repeat("<p>a reasonably long article paragraph of content. </p>", 10) + `</article>
		<div class="comment-thread">
			<p>A reader comment about the article that is long enough to count.</p>
		</div>
	</body></html>`

	opts := distill.DefaultOptions()
	opts.IncludeComments = true
	res, err := distill.ExtractWithOptions(html, opts)
	require.NoError(t, err)
	assert.Contains(t, res.CommentsText, "reader comment")
}
