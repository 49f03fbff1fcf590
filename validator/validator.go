// Package validator implements the validator (C12): post-assembly
// threshold checks that emit warnings rather than hard failures, per
// spec.md §4.9. Grounded on the teacher's pkg/extractors/validation
// package shape — a config carrying thresholds plus a "collect all,
// never hard fail" profile — simplified to the three warning rules
// plus truncation spec.md names.
package validator

import (
	"fmt"
	"strings"
)

// Options carries the thresholds spec.md §3 lists under Options.
type Options struct {
	MinExtractedLen    int
	MaxExtractedLen    int
	MinOutputWords     int
	MinOutputCommWords int
}

// Result is the validated, possibly-truncated content plus warnings.
type Result struct {
	Text         string
	CommentsText string
	DropComments bool
	Warnings     []string
}

// Validate applies spec.md §4.9's three rules against contentText and
// commentsText, truncating contentText to MaxExtractedLen if needed.
func Validate(contentText, commentsText string, opts Options) Result {
	res := Result{Text: contentText, CommentsText: commentsText}

	trimmed := strings.TrimSpace(contentText)
	if len(strings.Fields(trimmed)) < opts.MinOutputWords || len(trimmed) < opts.MinExtractedLen {
		res.Warnings = append(res.Warnings, "Insufficient content: extracted text is shorter than the configured minimum")
	}

	if opts.MaxExtractedLen > 0 && len(res.Text) > opts.MaxExtractedLen {
		res.Text = truncate(res.Text, opts.MaxExtractedLen)
		res.Warnings = append(res.Warnings, fmt.Sprintf("Content truncated to %d characters", opts.MaxExtractedLen))
	}

	if commentsText != "" {
		commentWords := len(strings.Fields(strings.TrimSpace(commentsText)))
		if commentWords < opts.MinOutputCommWords {
			res.DropComments = true
			res.CommentsText = ""
			res.Warnings = append(res.Warnings, "Comments section removed: below minimum word count")
		}
	}

	return res
}

// truncate cuts s to at most n bytes without splitting a multi-byte
// rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
