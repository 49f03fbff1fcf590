package patterns

import "strings"

// boilerplateSubstrings are the tokens position-aware / BEM-aware
// matching is layered on top of, per spec.md §4.3.
var boilerplateSubstrings = []string{"sidebar", "social", "share", "author", "ad", "widget"}

// sidebarPrecedingTokens: "sidebar" only matches at token start, as the
// sole token, or preceded by one of these.
var sidebarPrecedingTokens = map[string]bool{
	"left": true, "right": true, "primary": true, "secondary": true,
	"main": true, "widget": true,
}

// authorFollowingTokens: "author" matches as sole token, or followed by
// one of these suffixes.
var authorFollowingTokens = map[string]bool{
	"box": true, "bio": true, "info": true, "avatar": true, "meta": true,
}

// authorPrecedingTokens: or preceded by one of these.
var authorPrecedingTokens = map[string]bool{"pp": true, "ppma": true}

// tokenize splits a class string into its whitespace-separated tokens,
// lowercased.
func tokenize(class string) []string {
	return strings.Fields(strings.ToLower(class))
}

// IsBoilerplateClass reports whether a class/id string matches the
// boilerplate catalog, honoring the BEM-aware exemptions and
// position-aware token matching of spec.md §4.3:
//
//   - a token prefixed "l-" or "c-" is exempt from a "sidebar"/"social"
//     match iff stripping that substring from the token would eliminate
//     the match entirely (so "l-sidebar-fixed" is not boilerplate, but
//     "c-social-share" still is, because "share" matches independently)
//   - "sidebar" only matches at token start, as the sole token, or
//     preceded by {left,right,primary,secondary,main,widget}
//   - "author" matches only as the sole token, followed by
//     {box,bio,info,avatar,meta}, or preceded by {pp,ppma}
//   - "widget" does not match when preceded by "elementor"
//   - "ad" is only checked against the first alphanumeric token of the
//     full class string
func IsBoilerplateClass(classAndID string) bool {
	tokens := tokenize(classAndID)
	if len(tokens) == 0 {
		return false
	}

	if matchesAd(tokens[0]) {
		return true
	}

	for i, tok := range tokens {
		if matchesToken(tok, i, tokens) {
			return true
		}
	}
	return false
}

func matchesAd(firstToken string) bool {
	// "ad" only matches the first alphanumeric token, as a whole token
	// or a bem-style prefix/suffix ("ad-slot", "adbox", "ad_unit").
	clean := firstToken
	if clean == "ad" {
		return true
	}
	if strings.HasPrefix(clean, "ad-") || strings.HasPrefix(clean, "ad_") || strings.HasPrefix(clean, "adbox") || strings.HasPrefix(clean, "adsense") {
		return true
	}
	return false
}

func matchesToken(tok string, idx int, tokens []string) bool {
	prefix, base, exempt := bemSplit(tok)

	if matchesSidebar(base, idx, tokens) {
		return !exempt || !bemExemptionEliminates(base, "sidebar")
	}
	if matchesSocial(base) {
		return !exempt || !bemExemptionEliminates(base, "social")
	}
	if matchesAuthor(base, idx, tokens) {
		return true
	}
	if matchesWidget(base, idx, tokens) {
		return true
	}
	_ = prefix
	return false
}

// bemSplit reports whether tok carries an exemption-eligible "l-" or
// "c-" BEM prefix, and returns the remainder to match against.
func bemSplit(tok string) (prefix, base string, exempt bool) {
	if strings.HasPrefix(tok, "l-") {
		return "l-", strings.TrimPrefix(tok, "l-"), true
	}
	if strings.HasPrefix(tok, "c-") {
		return "c-", strings.TrimPrefix(tok, "c-"), true
	}
	return "", tok, false
}

// bemExemptionEliminates reports whether removing substr from base
// would eliminate the match — i.e. base minus substr no longer
// contains substr (trivially true, since substr was just removed) AND
// no other boilerplate substring remains. This is the exemption test
// of spec.md §4.3: "exempt iff removing the substring would eliminate
// the boilerplate match".
func bemExemptionEliminates(base, substr string) bool {
	without := strings.Replace(base, substr, "", 1)
	for _, other := range boilerplateSubstrings {
		if other == substr {
			continue
		}
		if strings.Contains(without, other) {
			return false
		}
	}
	return true
}

func matchesSidebar(base string, idx int, tokens []string) bool {
	if !strings.Contains(base, "sidebar") {
		return false
	}
	if strings.HasPrefix(base, "sidebar") {
		return true
	}
	if len(tokens) == 1 && base == "sidebar" {
		return true
	}
	if idx > 0 && sidebarPrecedingTokens[tokens[idx-1]] {
		return true
	}
	return false
}

func matchesSocial(base string) bool {
	return strings.Contains(base, "social") || strings.Contains(base, "share") || strings.Contains(base, "sociable")
}

func matchesAuthor(base string, idx int, tokens []string) bool {
	if !strings.Contains(base, "author") {
		return false
	}
	if len(tokens) == 1 && base == "author" {
		return true
	}
	if idx < len(tokens)-1 && base == "author" && authorFollowingTokens[tokens[idx+1]] {
		return true
	}
	if idx > 0 && base == "author" && authorPrecedingTokens[tokens[idx-1]] {
		return true
	}
	parts := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		if p != "author" {
			continue
		}
		if i < len(parts)-1 && authorFollowingTokens[parts[i+1]] {
			return true
		}
		if i > 0 && authorPrecedingTokens[parts[i-1]] {
			return true
		}
	}
	return false
}

func matchesWidget(base string, idx int, tokens []string) bool {
	if !strings.Contains(base, "widget") {
		return false
	}
	if idx > 0 && tokens[idx-1] == "elementor" {
		return false
	}
	return true
}
