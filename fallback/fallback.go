package fallback

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/walker"
)

// NeedsFallback implements spec.md §4.8's trigger conditions: the
// primary pipeline's output is considered under-extracted if any of
// these hold.
func NeedsFallback(extractedText, extractedHTML string, minExtractedLen, minOutputWords int) bool {
	text := strings.TrimSpace(extractedText)
	if len(text) < minExtractedLen {
		return true
	}
	if wordCount(text) < minOutputWords {
		return true
	}
	doc, err := htmldom.ParseString("<html><body>" + extractedHTML + "</body></html>")
	if err == nil {
		paragraphs := doc.Find("p").Len()
		tables := doc.Find("table").Len()
		if paragraphs == 0 {
			return true
		}
		if tables >= paragraphs {
			return true
		}
	}
	if LooksLikeNavigation(text) {
		return true
	}
	return false
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// StructuredBody runs the JSON-LD and Discourse locators against
// backup and returns the longer of the two, per spec.md §4.8 step 1.
func StructuredBody(backup *htmldom.Document) (body string, source string, ok bool) {
	jsonLD, jsonLDOK := JSONLDArticleBody(backup)
	discourse, discourseOK := DiscourseArticleBody(backup)
	switch {
	case jsonLDOK && discourseOK:
		if len(jsonLD) >= len(discourse) {
			return jsonLD, "json-ld", true
		}
		return discourse, "discourse", true
	case jsonLDOK:
		return jsonLD, "json-ld", true
	case discourseOK:
		return discourse, "discourse", true
	default:
		return "", "", false
	}
}

// PreferStructuredBody decides whether a structured body found via
// StructuredBody should replace the DOM-extracted text, per spec.md
// §4.8 step 1's substitution rule.
func PreferStructuredBody(structuredBody, extractedText string) bool {
	structuredBody = strings.TrimSpace(structuredBody)
	extractedText = strings.TrimSpace(extractedText)
	if structuredBody == "" {
		return false
	}
	if len(structuredBody) >= 500 && len(extractedText) < 200 {
		return true
	}
	if len(extractedText) > 0 && len(structuredBody) > 2*len(extractedText) {
		return true
	}
	if LooksLikeNavigation(extractedText) || looksLikeNavOrCookieLine(extractedText) {
		return true
	}
	return false
}

// Input bundles everything Run needs to carry out spec.md §4.8 steps
// 2-4 once step 1 (handled by StructuredBody/PreferStructuredBody) has
// already run.
type Input struct {
	Backup              *htmldom.Document
	ContentNode         *htmldom.Node // the chosen (possibly nil) pruned content subtree
	ExtractedText       string
	ExtractedHTML       string
	StructuredBody      string
	SourceURL           string
	MinExtractedLen     int
	MinOutputWords      int
	MaxExtractedLen     int
	DedupCacheSize      int
	FavorPrecision      bool
	FavorRecall         bool
	RelaxedFallbackUsed bool
	WalkOpts            walker.Options
}

// Result reports which fallback stages fired, for the caller's
// warnings list.
type Result struct {
	Text               string
	UsedReadability    bool
	UsedBaseline       bool
	UsedSplitBodyMerge bool
}

// Run executes spec.md §4.8 steps 2-4 in order, returning the best text
// found. The caller is expected to have already tried step 1
// (StructuredBody / PreferStructuredBody) and to pass its result in
// in.StructuredBody so Baseline can use it without recomputing.
func Run(in Input) Result {
	result := Result{Text: in.ExtractedText}

	if candidate, headingsInCandidate, ok := ReadabilityCandidate(backupHTML(in.Backup), in.SourceURL); ok {
		headingsInExtracted := containsHeadingTag(in.ExtractedHTML)
		if CandidateIsUsable(in.ExtractedText, candidate, in.ExtractedHTML, in.MinOutputWords, in.FavorRecall, headingsInCandidate, headingsInExtracted) {
			result.Text = candidate
			result.UsedReadability = true
		}
	}

	if !in.FavorPrecision && len(strings.TrimSpace(result.Text)) < in.MinExtractedLen {
		result.Text = Baseline(in.Backup, in.StructuredBody, in.DedupCacheSize)
		result.UsedBaseline = true
	}

	if in.ContentNode != nil && in.ContentNode.Len() > 0 {
		if merged, ok := SplitBodyMerge(in.ContentNode, result.Text, in.MaxExtractedLen, in.RelaxedFallbackUsed, in.WalkOpts); ok {
			result.Text = merged
			result.UsedSplitBodyMerge = true
		}
	}

	return result
}

func backupHTML(backup *htmldom.Document) string {
	if backup == nil {
		return ""
	}
	return backup.HTML()
}
