package patterns

import (
	"regexp"
	"strings"
)

// sharePlatformNames are the social-platform names a share-button line
// may begin with, per spec.md §4.7.
var sharePlatformNames = []string{
	"facebook", "twitter", "linkedin", "pinterest", "reddit", "whatsapp",
	"pocket", "flipboard", "email", "print", "pdf", "xing", "qq", "wechat", "weibo",
}

var nonAlnumPrefixRE = regexp.MustCompile(`^[^\p{L}\p{N}]+`)

var subscribeCTARE = regexp.MustCompile(`(?i)subscribe|sign up for our newsletter|join our newsletter|get the newsletter`)

var imageInteractionPhrases = map[string]bool{
	"enlarge image": true, "view gallery": true, "view image": true,
	"see full image": true, "tap to expand": true, "click to enlarge": true,
}

var photoCreditPrefixes = []string{"photo:", "photo by", "credit:", "image:", "courtesy of", "(photo", "(credit"}

var photoAgencyNames = []string{"getty images", "ap photo", "reuters", "afp", "shutterstock", "istock"}

var newsAgencyBylinePrefixes = []string{"reuters,", "pti,", "staff reports", "special to", "afp,", "ians,"}

var timestampPrefixRE = regexp.MustCompile(`(?i)^(updated|published|posted)[:\s]`)

var byLineRE = regexp.MustCompile(`^By [A-Z][\w.\- ]{0,48}$`)

// IsShareButtonText reports whether a line of text is boilerplate
// share-widget/byline/CTA chrome rather than article content, per the
// matcher rules of spec.md §4.7.
func IsShareButtonText(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	stripped := nonAlnumPrefixRE.ReplaceAllString(trimmed, "")
	lower := strings.ToLower(stripped)

	for _, name := range sharePlatformNames {
		if strings.HasPrefix(lower, name) {
			return true
		}
	}

	if strings.HasPrefix(lower, "more on this") || strings.HasPrefix(lower, "mehr zum thema") {
		return true
	}

	switch lower {
	case "comments", "comment", "kommentare":
		return true
	}

	if subscribeCTARE.MatchString(trimmed) {
		return true
	}

	if imageInteractionPhrases[lower] {
		return true
	}

	if len(trimmed) < 120 {
		for _, p := range photoCreditPrefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		for _, agency := range photoAgencyNames {
			if strings.Contains(lower, agency) {
				return true
			}
		}
	}

	if len(trimmed) < 80 {
		for _, p := range newsAgencyBylinePrefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		if byLineRE.MatchString(trimmed) && !hasSentenceStructure(trimmed) {
			return true
		}
		if timestampPrefixRE.MatchString(trimmed) {
			return true
		}
	}

	return false
}

// hasSentenceStructure is a cheap heuristic: a real sentence usually
// contains more than just a name — i.e. more than 3 words beyond "By".
func hasSentenceStructure(text string) bool {
	words := strings.Fields(text)
	return len(words) > 4
}
