package walker

import (
	"regexp"
	"strings"
)

var (
	multiBlankLinesRE   = regexp.MustCompile(`\n{3,}`)
	spaceBeforePunctRE  = regexp.MustCompile(` +([.,;:!?])`)
	repeatedSpacesRE    = regexp.MustCompile(`[ \t]{2,}`)
	spaceAroundNewlineR = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// PostProcess implements spec.md §4.7's final pass over the walker's
// raw concatenation: collapse repeated whitespace, reattach stray
// leading punctuation to its preceding word, collapse runs of three or
// more newlines to a single blank line, and trim.
func PostProcess(s string) string {
	s = spaceAroundNewlineR.ReplaceAllString(s, "\n")
	s = repeatedSpacesRE.ReplaceAllString(s, " ")
	s = spaceBeforePunctRE.ReplaceAllString(s, "$1")
	s = multiBlankLinesRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
