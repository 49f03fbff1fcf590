package metadata

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

// extractLanguage reads <html lang>, then <meta http-equiv
// content-language>, then <meta name=language>, normalized to an
// ISO-639-1 primary subtag — the same normalization finder.Find uses
// for Options.TargetLanguage, so the two agree on what "English" means
// for a document tagged "en-US" vs "en_GB".
func extractLanguage(doc *htmldom.Document) string {
	html := doc.Find("html")
	if lang := html.AttrOr("lang", ""); lang != "" {
		return normalizeLang(lang)
	}
	if lang := httpEquivLanguage(doc); lang != "" {
		return normalizeLang(lang)
	}
	if lang := metaNamed(doc, "language"); lang != "" {
		return normalizeLang(lang)
	}
	return ""
}

func httpEquivLanguage(doc *htmldom.Document) string {
	v := ""
	doc.Find(`meta[http-equiv="content-language"]`).Each(func(_ int, n *htmldom.Node) {
		if v == "" {
			v = n.AttrOr("content", "")
		}
	})
	return v
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
