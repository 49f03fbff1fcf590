package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/distill/patterns"
)

func TestIsShareButtonTextMatchesPlatformName(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Facebook"))
	assert.True(t, patterns.IsShareButtonText("Twitter Share"))
	assert.True(t, patterns.IsShareButtonText("  Reddit"))
}

func TestIsShareButtonTextMatchesCommentsLabel(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Comments"))
	assert.True(t, patterns.IsShareButtonText("Kommentare"))
}

func TestIsShareButtonTextMatchesSubscribeCTA(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Sign up for our newsletter today"))
}

func TestIsShareButtonTextMatchesImageInteractionPhrase(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Enlarge Image"))
}

func TestIsShareButtonTextMatchesPhotoCreditWhenShort(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Photo: Jane Doe/Getty Images"))
}

func TestIsShareButtonTextMatchesByLineWithoutSentenceStructure(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("By John Smith"))
}

func TestIsShareButtonTextAllowsByLineWithSentenceStructure(t *testing.T) {
	// A capitalized word after "By" followed by enough words reads as
	// real prose, not a byline.
	assert.False(t, patterns.IsShareButtonText("By Request The Committee Released Its Findings Today"))
}

func TestIsShareButtonTextMatchesTimestampPrefix(t *testing.T) {
	assert.True(t, patterns.IsShareButtonText("Updated: March 15, 2026"))
}

func TestIsShareButtonTextFalseForRealSentence(t *testing.T) {
	assert.False(t, patterns.IsShareButtonText("The committee released its findings on Thursday afternoon."))
}

func TestIsShareButtonTextFalseForEmptyLine(t *testing.T) {
	assert.False(t, patterns.IsShareButtonText("   "))
}

func TestIsShareButtonTextLongPhotoCreditNotMatched(t *testing.T) {
	long := "Photo: this credit line has been padded out with enough extra words that it exceeds the one hundred twenty character threshold used to gate photo credit matching entirely"
	assert.False(t, patterns.IsShareButtonText(long))
}
