// Package distill implements the boilerplate-removal / article-content
// extraction engine of spec.md: parse HTML, find the main content
// subtree via the selector-rule engine (falling back to the heuristic
// scorer), prune unwanted sections, linearize with the filtered text
// walker, and rescue under-extraction with the fallback orchestrator.
// Grounded on the teacher's client.go (New/Parse/ParseHTML orchestration
// shape), generalized from a URL-fetching client into the pre-fetched
// HTML pipeline spec.md §1 scopes this module to.
package distill

import (
	"github.com/kestrelhq/distill/charset"
	"github.com/kestrelhq/distill/cleaner"
	"github.com/kestrelhq/distill/comments"
	"github.com/kestrelhq/distill/fallback"
	"github.com/kestrelhq/distill/finder"
	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/markdown"
	"github.com/kestrelhq/distill/metadata"
	"github.com/kestrelhq/distill/pruner"
	"github.com/kestrelhq/distill/sanitize"
	"github.com/kestrelhq/distill/scorer"
	"github.com/kestrelhq/distill/validator"
	"github.com/kestrelhq/distill/walker"
)

// Extract runs extraction with DefaultOptions().
func Extract(html string) (*ExtractResult, error) {
	return ExtractWithOptions(html, DefaultOptions())
}

// ExtractBytes detects and transcodes html's charset to UTF-8 (spec.md
// §6) before running Extract.
func ExtractBytes(b []byte) (*ExtractResult, error) {
	return ExtractBytesWithOptions(b, DefaultOptions())
}

// ExtractBytesWithOptions is ExtractBytes with caller-supplied Options.
func ExtractBytesWithOptions(b []byte, opts Options) (*ExtractResult, error) {
	return ExtractWithOptions(charset.ToUTF8(b), opts)
}

// ExtractWithOptions runs the full pipeline described in spec.md §2:
// parse, extract metadata, clone a pre-clean backup, clean, find
// content (falling back to the scorer), prune, linearize, rescue via
// the fallback orchestrator if under-extracted, then validate and
// assemble the result. The top-level entry points are infallible in
// practice: unrecoverable failures are reported as a warning on a
// near-empty ExtractResult rather than a non-nil error.
func ExtractWithOptions(html string, opts Options) (*ExtractResult, error) {
	opts = opts.normalize()

	doc, err := htmldom.ParseString(html)
	if err != nil {
		return &ExtractResult{Warnings: []string{"content extraction failed: could not parse HTML"}}, nil
	}

	meta := metadata.Extract(doc, metadata.Options{
		URL:             opts.URL,
		AuthorBlacklist: opts.AuthorBlacklist,
	})

	backup := doc.Clone()
	structuredBody, _, hasStructuredBody := fallback.StructuredBody(backup)

	cleaner.Clean(doc)

	var warnings []string

	content := finder.Find(doc, finder.Options{
		TargetLanguage: opts.TargetLanguage,
		DocumentLang:   meta.Language,
	})
	usedScorer := false
	if content.Len() == 0 {
		if cand := scorer.Score(doc, scorerMode(opts), opts.TargetLanguage != ""); cand != nil {
			content = cand.Node
			usedScorer = true
		}
	}

	if content == nil || content.Len() == 0 {
		warnings = append(warnings, "content extraction failed: no main content found")
		content = &htmldom.Node{}
	} else {
		pruner.PruneUnwantedSections(content, pruner.Options{
			IncludeImages:  opts.IncludeImages,
			IncludeTables:  opts.IncludeTables,
			FavorRecall:    opts.FavorRecall,
			FavorPrecision: opts.FavorPrecision,
			MaxLinkDensity: opts.MaxLinkDensity,
		})
	}

	walkOpts := walker.Options{
		IncludeTables:          opts.IncludeTables,
		IncludeLinks:           opts.IncludeLinks,
		MaxLinkDensity:         opts.MaxLinkDensity,
		FavorPrecision:         opts.FavorPrecision,
		FilterNamedBoilerplate: true,
		PageTitle:              meta.Title,
		MaxOutputLen:           opts.MaxExtractedLen,
	}

	var contentText, contentHTML string
	if content.Len() > 0 {
		contentText = walker.Walk(content, walkOpts)
		contentHTML = content.Html()
	}

	if hasStructuredBody && fallback.PreferStructuredBody(structuredBody, contentText) {
		contentText = structuredBody
		warnings = append(warnings, "used structured (JSON-LD/Discourse) content body")
	}

	if fallback.NeedsFallback(contentText, contentHTML, opts.MinExtractedLen, opts.MinOutputSize) {
		fb := fallback.Run(fallback.Input{
			Backup:              backup,
			ContentNode:         content,
			ExtractedText:       contentText,
			ExtractedHTML:       contentHTML,
			StructuredBody:      structuredBody,
			SourceURL:           opts.URL,
			MinExtractedLen:     opts.MinExtractedLen,
			MinOutputWords:      opts.MinOutputSize,
			MaxExtractedLen:     opts.MaxExtractedLen,
			DedupCacheSize:      opts.DedupCacheSize,
			FavorPrecision:      opts.FavorPrecision,
			FavorRecall:         opts.FavorRecall,
			RelaxedFallbackUsed: usedScorer,
			WalkOpts:            walkOpts,
		})
		contentText = fb.Text
		if fb.UsedReadability {
			warnings = append(warnings, "used fallback extraction: readability candidate")
		}
		if fb.UsedBaseline {
			warnings = append(warnings, "used fallback extraction: baseline scrape")
		}
		if fb.UsedSplitBodyMerge {
			warnings = append(warnings, "used fallback extraction: split-body merge")
		}
	}

	var commentsText string
	if opts.IncludeComments {
		if text, ok := comments.Extract(doc, comments.Options{
			FavorPrecision: opts.FavorPrecision,
			MaxLinkDensity: opts.MaxLinkDensity,
		}); ok {
			commentsText = text
		}
	}

	var images []ImageData
	if opts.IncludeImages && content.Len() > 0 {
		for _, im := range metadata.CollectImages(content, meta.Image) {
			images = append(images, ImageData{
				Src:      im.Src,
				Filename: im.Filename,
				Alt:      im.Alt,
				Caption:  im.Caption,
				IsHero:   im.IsHero,
			})
		}
	}

	vres := validator.Validate(contentText, commentsText, validator.Options{
		MinExtractedLen:    opts.MinExtractedLen,
		MaxExtractedLen:    opts.MaxExtractedLen,
		MinOutputWords:     opts.MinOutputSize,
		MinOutputCommWords: opts.MinOutputCommSize,
	})
	warnings = append(warnings, vres.Warnings...)

	result := &ExtractResult{
		ContentText:  vres.Text,
		CommentsText: vres.CommentsText,
		Images:       images,
		Metadata:     meta,
		Warnings:     warnings,
	}
	if contentHTML != "" {
		result.ContentHTML = sanitize.HTML(contentHTML, opts.IncludeLinks, opts.IncludeImages)
	}
	if opts.OutputMarkdown && result.ContentHTML != "" {
		result.ContentMarkdown = markdown.Render(result.ContentHTML)
	}

	return result, nil
}

func scorerMode(opts Options) scorer.Mode {
	switch {
	case opts.FavorPrecision:
		return scorer.ModeFavorPrecision
	case opts.FavorRecall:
		return scorer.ModeFavorRecall
	default:
		return scorer.ModeDefault
	}
}
