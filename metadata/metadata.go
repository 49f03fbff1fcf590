// Package metadata is the external collaborator spec.md §6 describes:
// it yields Title, Author, Date, Language, Sitename, Description, URL,
// Hostname, Categories, Tags, Image, PageType, License, ID and
// Fingerprint; Extract leaves Categories, License and ID empty. The
// content pipeline itself (finder, walker) only
// consumes Title (heading dedup) and Image (hero marking), per §6, but
// this package implements the full collaborator so the library is
// usable end-to-end without a caller-supplied extractor. Grounded on
// the teacher's pkg/cleaners/{title,author,date_published,dek}.go and
// pkg/extractors/generic/{site_name,site_image,favicon}.go, with date
// parsing replaced by github.com/markusmobius/go-dateparser (a teacher
// dependency the original code never imports, hand-rolling its own
// regex cascade instead).
package metadata

import (
	"net/url"
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

// Metadata is the collaborator output of spec.md §6.
type Metadata struct {
	Title       string
	Author      string
	Date        string
	Language    string
	Sitename    string
	Description string
	URL         string
	Hostname    string
	Categories  []string
	Tags        []string
	Image       string
	PageType    string
	License     string
	ID          string
	Fingerprint string
}

// Options configures Extract.
type Options struct {
	URL             string
	AuthorBlacklist []string
}

// Extract reads metadata from doc's <head> and body, before the
// document cleaner removes anything (spec.md §3: "metadata extraction
// must complete before cleaning").
func Extract(doc *htmldom.Document, opts Options) Metadata {
	m := Metadata{URL: opts.URL}
	m.Hostname = hostnameOf(opts.URL)

	m.Title = extractTitle(doc)
	m.Author = extractAuthor(doc, opts.AuthorBlacklist)
	m.Date = extractDate(doc)
	m.Language = extractLanguage(doc)
	m.Sitename = metaContent(doc, "og:site_name")
	m.Description = firstNonEmpty(
		metaContent(doc, "og:description"),
		metaNamed(doc, "description"),
	)
	m.Image = metaContent(doc, "og:image")
	m.PageType = metaContent(doc, "og:type")
	m.Tags = extractTags(doc)
	m.Fingerprint = fingerprint(m.Title, m.URL)

	return m
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func metaContent(doc *htmldom.Document, property string) string {
	v := ""
	doc.Find(`meta[property="` + property + `"]`).Each(func(_ int, n *htmldom.Node) {
		if v == "" {
			v = n.AttrOr("content", "")
		}
	})
	if v == "" {
		doc.Find(`meta[name="` + property + `"]`).Each(func(_ int, n *htmldom.Node) {
			if v == "" {
				v = n.AttrOr("content", "")
			}
		})
	}
	return strings.TrimSpace(v)
}

func metaNamed(doc *htmldom.Document, name string) string {
	v := ""
	doc.Find(`meta[name="` + name + `"]`).Each(func(_ int, n *htmldom.Node) {
		if v == "" {
			v = n.AttrOr("content", "")
		}
	})
	return strings.TrimSpace(v)
}

func extractTags(doc *htmldom.Document) []string {
	raw := firstNonEmpty(metaContent(doc, "article:tag"), metaNamed(doc, "keywords"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// fingerprint is a stable, low-collision per-article key, distinct
// from the dedup package's content fingerprinting (this one identifies
// *articles*, not paragraphs).
func fingerprint(title, rawURL string) string {
	key := strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(rawURL))
	if key == "|" {
		return ""
	}
	return key
}
