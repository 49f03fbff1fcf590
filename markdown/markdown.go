// Package markdown renders content_html to content_markdown when
// Options.OutputMarkdown is set, via github.com/JohannesKaufmann/
// html-to-markdown — grounded directly on the teacher's
// convertToMarkdown (pkg/parser/extract_all_fields.go), reused as-is
// since this expansion's content_html has the same shape (a sanitized
// fragment, not a full document) the teacher's converter already
// handles.
package markdown

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Render converts an HTML fragment to Markdown, falling back to the
// input HTML unchanged if conversion fails — content_markdown is an
// optional enrichment, never a hard requirement of extraction.
func Render(contentHTML string) string {
	converter := md.NewConverter("", true, nil)
	out, err := converter.ConvertString(contentHTML)
	if err != nil {
		return contentHTML
	}
	return out
}
