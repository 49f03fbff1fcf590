package fallback

import (
	"strings"

	"github.com/kestrelhq/distill/dedup"
	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/rules"
)

var navLikeTokens = []string{"home", "about", "contact", "links", "menu", "search", "login", "subscribe", "newsletter"}

var cookieTrackingTokens = []string{"cookie", "gdpr", "consent", "tracking", "we use cookies"}

// Baseline implements spec.md §4.8 step 3: unconditional rescue when
// extraction is still under min_extracted_len and precision is not
// favored. Tries, in order: the JSON-LD/Discourse structured body (if
// any), bare <article>/<story> text, a deduplicated concatenation of
// <p>/<blockquote>/<pre>/<q>/<code> bodies skipping discard matches and
// nav/cookie-like lines, and finally the whole body's text.
func Baseline(backup *htmldom.Document, structuredBody string, dedupCacheSize int) string {
	if structuredBody != "" {
		return structuredBody
	}

	article := backup.Find("article, story")
	if article.Len() > 0 {
		if text := strings.TrimSpace(article.First().Text()); text != "" {
			return text
		}
	}

	if text := scrapeLooseBodies(backup, dedupCacheSize); text != "" {
		return text
	}

	body := backup.Find("body")
	return strings.TrimSpace(body.Text())
}

func scrapeLooseBodies(backup *htmldom.Document, dedupCacheSize int) string {
	cache := dedup.New(dedupCacheSize)
	var chunks []string
	backup.Find("p, blockquote, pre, q, code").Each(func(_ int, n *htmldom.Node) {
		if rules.AnyMatch(n, rules.OverallDiscardRules) {
			return
		}
		text := strings.TrimSpace(n.Text())
		if text == "" || looksLikeNavOrCookieLine(text) {
			return
		}
		if cache.Seen(text) {
			return
		}
		chunks = append(chunks, text)
	})
	return strings.Join(chunks, "\n\n")
}

func looksLikeNavOrCookieLine(text string) bool {
	lower := strings.ToLower(text)
	if len(text) < 200 {
		for _, tok := range cookieTrackingTokens {
			if strings.Contains(lower, tok) {
				return true
			}
		}
	}
	if len(text) < 60 {
		count := 0
		for _, tok := range navLikeTokens {
			if strings.Contains(lower, tok) {
				count++
			}
		}
		if count >= 2 {
			return true
		}
	}
	return false
}

// LooksLikeNavigation implements spec.md §4.8's under-extraction
// trigger clause: "first 100 chars contain ≥3 of {home, about, contact,
// links, menu, search, login}".
func LooksLikeNavigation(extracted string) bool {
	head := extracted
	if len(head) > 100 {
		head = head[:100]
	}
	lower := strings.ToLower(head)
	tokens := []string{"home", "about", "contact", "links", "menu", "search", "login"}
	count := 0
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			count++
		}
	}
	return count >= 3
}
