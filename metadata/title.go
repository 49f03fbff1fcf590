package metadata

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

var titleSeparators = []string{" | ", " - ", " — ", " – ", ": "}

// extractTitle prefers og:title, then <title>, then a lone <h1>,
// stripping a trailing "Site Name" half via separator detection —
// grounded on the teacher's CleanTitle (pkg/cleaners/title.go), kept
// in sync with the walker's own title-dedup normalization so an <h1>
// that repeats the title is recognized consistently by both.
func extractTitle(doc *htmldom.Document) string {
	raw := firstNonEmpty(
		metaContent(doc, "og:title"),
		strings.TrimSpace(doc.Find("title").Text()),
	)
	if raw == "" {
		h1s := doc.Find("h1")
		if h1s.Len() == 1 {
			raw = strings.TrimSpace(h1s.Text())
		}
	}
	return cleanTitle(raw)
}

func cleanTitle(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}
	for _, sep := range titleSeparators {
		if idx := strings.Index(cleaned, sep); idx > 0 {
			left := strings.TrimSpace(cleaned[:idx])
			right := strings.TrimSpace(cleaned[idx+len(sep):])
			// Prefer the longer half as the article title: site-name
			// suffixes/prefixes are usually the shorter segment.
			if len(left) >= len(right) {
				cleaned = left
			} else {
				cleaned = right
			}
			break
		}
	}
	return normalizeSpaces(cleaned)
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
