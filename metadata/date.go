package metadata

import (
	"strings"
	"time"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/markusmobius/go-dateparser"
)

// extractDate reads a publish date from the usual meta tags and
// <time datetime> markup, then parses it with go-dateparser for real
// multi-locale date handling — the teacher declares this dependency in
// go.mod but never imports it, instead hand-rolling a regex cascade
// (pkg/cleaners/date_published.go) that only understands
// English-language formats.
func extractDate(doc *htmldom.Document) string {
	raw := firstNonEmpty(
		metaContent(doc, "article:published_time"),
		metaContent(doc, "og:article:published_time"),
		metaNamed(doc, "date"),
		timeElementDatetime(doc),
	)
	if raw == "" {
		return ""
	}
	if t, ok := parseDate(raw); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return strings.TrimSpace(raw)
}

func timeElementDatetime(doc *htmldom.Document) string {
	n := doc.Find("time[datetime]")
	if n.Len() == 0 {
		return ""
	}
	return n.First().AttrOr("datetime", "")
}

func parseDate(raw string) (time.Time, bool) {
	result, err := dateparser.Parse(nil, raw)
	if err != nil || result == nil {
		return time.Time{}, false
	}
	return result.Date, true
}
