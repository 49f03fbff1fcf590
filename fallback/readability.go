package fallback

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/kestrelhq/distill/htmldom"
)

// ReadabilityCandidate runs go-shiori/go-readability over backupHTML —
// the pre-cleaning document, passed as is; social-share plugins are not
// removed from it first — and returns its plain-text article body plus whether its HTML content
// carries any heading, for rule (g). sourceURL may be empty; the
// readability algorithm only uses it to resolve relative links, which
// this text-only comparison does not need.
func ReadabilityCandidate(backupHTML, sourceURL string) (text string, hasHeadings bool, ok bool) {
	pageURL, err := url.Parse(sourceURL)
	if err != nil || pageURL == nil {
		pageURL = &url.URL{}
	}
	article, err := readability.FromReader(strings.NewReader(backupHTML), pageURL)
	if err != nil {
		return "", false, false
	}
	text = strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", false, false
	}
	return text, containsHeadingTag(article.Content), true
}

func containsHeadingTag(contentHTML string) bool {
	doc, err := htmldom.ParseString("<html><body>" + contentHTML + "</body></html>")
	if err != nil {
		return false
	}
	return doc.Find("h1, h2, h3, h4, h5, h6").Len() > 0
}

// minSizeChars is the candidate_is_usable sanity-check size referenced by
// spec.md §4.8 step 2 rules b/e/f: the same `min_output_size`
// threshold (words) converted to a rough character count.
func minSizeChars(minOutputWords int) int {
	return minOutputWords * 5
}

// CandidateIsUsable implements spec.md §4.8 step 2's candidate_is_usable
// rules a-g: extracted is the filtered-walker text already produced by
// the primary pipeline, candidate is the readability text, extractedHTML
// is the pruned subtree's HTML (for paragraph/table counting), and
// favorRecall/headingsInCandidate feed rule g.
func CandidateIsUsable(extracted, candidate, extractedHTML string, minOutputWords int, favorRecall, headingsInCandidate, headingsInExtracted bool) bool {
	extracted = strings.TrimSpace(extracted)
	candidate = strings.TrimSpace(candidate)
	minChars := minSizeChars(minOutputWords)

	if extracted == "" {
		return true // (a)
	}
	extractedLen := len(extracted)
	candidateLen := len(candidate)

	if candidateLen == 0 {
		return false
	}

	if extractedLen > 5*candidateLen && candidateLen >= minChars {
		return true // (b)
	}

	ratio := float64(extractedLen) / float64(candidateLen)
	if ratio >= 2 && ratio <= 5 && paragraphTextRatio(extractedHTML) < 0.4 {
		return true // (c)
	}

	if candidateLen > 2*extractedLen {
		return true // (d)
	}

	if !hasParagraphText(extractedHTML) && candidateLen > 2*minChars {
		return true // (e)
	}

	if tableCount(extractedHTML) > paragraphCount(extractedHTML) && candidateLen > 2*minChars {
		return true // (f)
	}

	if favorRecall && headingsInCandidate && !headingsInExtracted {
		return true // (g)
	}

	return false
}

func paragraphTextRatio(extractedHTML string) float64 {
	doc, err := htmldom.ParseString("<html><body>" + extractedHTML + "</body></html>")
	if err != nil {
		return 1
	}
	total := len(strings.TrimSpace(doc.Text()))
	if total == 0 {
		return 1
	}
	pLen := 0
	doc.Find("p").Each(func(_ int, p *htmldom.Node) {
		pLen += len(strings.TrimSpace(p.Text()))
	})
	return float64(pLen) / float64(total)
}

func hasParagraphText(extractedHTML string) bool {
	doc, err := htmldom.ParseString("<html><body>" + extractedHTML + "</body></html>")
	if err != nil {
		return false
	}
	found := false
	doc.Find("p").Each(func(_ int, p *htmldom.Node) {
		if strings.TrimSpace(p.Text()) != "" {
			found = true
		}
	})
	return found
}

func tableCount(extractedHTML string) int {
	doc, err := htmldom.ParseString("<html><body>" + extractedHTML + "</body></html>")
	if err != nil {
		return 0
	}
	return doc.Find("table").Len()
}

func paragraphCount(extractedHTML string) int {
	doc, err := htmldom.ParseString("<html><body>" + extractedHTML + "</body></html>")
	if err != nil {
		return 0
	}
	return doc.Find("p").Len()
}
