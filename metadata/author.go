package metadata

import (
	"regexp"
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

var authorPrefixRE = regexp.MustCompile(`(?i)^\s*(posted\s+by|written\s+by|by)\s*:?\s*`)

var authorSelectors = []string{
	`[rel="author"]`, `.author`, `.byline`, `[itemprop="author"]`,
}

// extractAuthor reads a byline from meta tags or common author markup,
// stripping a "By "/"Posted by " prefix — grounded on the teacher's
// CleanAuthor (pkg/cleaners/author.go) — and rejects any name present
// in blacklist (spec.md §3's Options.AuthorBlacklist).
func extractAuthor(doc *htmldom.Document, blacklist []string) string {
	raw := firstNonEmpty(
		metaContent(doc, "author"),
		metaContent(doc, "article:author"),
		findAuthorMarkup(doc),
	)
	author := cleanAuthor(raw)
	if isBlacklisted(author, blacklist) {
		return ""
	}
	return author
}

func findAuthorMarkup(doc *htmldom.Document) string {
	for _, sel := range authorSelectors {
		n := doc.Find(sel)
		if n.Len() > 0 {
			if text := strings.TrimSpace(n.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func cleanAuthor(author string) string {
	author = authorPrefixRE.ReplaceAllString(author, "")
	return normalizeSpaces(strings.TrimSpace(author))
}

func isBlacklisted(author string, blacklist []string) bool {
	if author == "" {
		return false
	}
	lower := strings.ToLower(author)
	for _, b := range blacklist {
		if b != "" && strings.Contains(lower, strings.ToLower(b)) {
			return true
		}
	}
	return false
}
