// Package sanitize applies the final content_html sanitization pass
// via github.com/microcosm-cc/bluemonday — grounded on the teacher's
// dependency declaration (unimported in the teacher itself) and on the
// UGCPolicy()-plus-AllowElements idiom shown across the retrieval pack
// (e.g. vdelacou-Go-Extract-Article-Content's ArticleExtractor).
package sanitize

import "github.com/microcosm-cc/bluemonday"

func newArticlePolicy(includeLinks, includeImages bool) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements(
		"p", "div", "span", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "em", "b", "i", "u", "mark", "small", "sub", "sup",
		"blockquote", "pre", "code", "q",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th",
		"figure", "figcaption",
	)
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	if includeLinks {
		p.AllowAttrs("href").OnElements("a")
		p.AllowElements("a")
	}
	if includeImages {
		p.AllowAttrs("src", "alt", "data-src").OnElements("img")
		p.AllowElements("img")
	}
	return p
}

// HTML sanitizes a content HTML fragment, stripping scripts, styles,
// event handlers and anything outside the article-content allowlist,
// honoring Options.IncludeLinks/IncludeImages (spec.md §3).
func HTML(contentHTML string, includeLinks, includeImages bool) string {
	return newArticlePolicy(includeLinks, includeImages).Sanitize(contentHTML)
}
