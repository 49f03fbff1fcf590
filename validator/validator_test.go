package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/distill/validator"
)

func TestValidatePassesGoodContent(t *testing.T) {
	text := strings.Repeat("a reasonably long sentence of body text. ", 20)
	res := validator.Validate(text, "", validator.Options{
		MinExtractedLen: 200,
		MinOutputWords:  50,
	})
	assert.Equal(t, text, res.Text)
	assert.Empty(t, res.Warnings)
}

func TestValidateWarnsOnInsufficientContent(t *testing.T) {
	res := validator.Validate("too short", "", validator.Options{
		MinExtractedLen: 200,
		MinOutputWords:  50,
	})
	assert.NotEmpty(t, res.Warnings)
}

func TestValidateTruncatesOverMax(t *testing.T) {
	text := strings.Repeat("x", 1000)
	res := validator.Validate(text, "", validator.Options{MaxExtractedLen: 100})
	assert.Len(t, res.Text, 100)
	assert.Contains(t, strings.Join(res.Warnings, " "), "truncated")
}

func TestValidateTruncationIsRuneSafe(t *testing.T) {
	text := strings.Repeat("é", 200) // each 'é' is 2 bytes in UTF-8
	res := validator.Validate(text, "", validator.Options{MaxExtractedLen: 101})
	// Truncating at byte 101 would split a rune; the result must still
	// decode to valid UTF-8 runes only.
	for _, r := range res.Text {
		assert.NotEqual(t, rune(0xFFFD), r)
	}
}

func TestValidateDropsShortComments(t *testing.T) {
	res := validator.Validate("main content here that is long enough to pass.", "too short", validator.Options{
		MinOutputCommWords: 10,
	})
	assert.True(t, res.DropComments)
	assert.Empty(t, res.CommentsText)
}

func TestValidateKeepsSufficientComments(t *testing.T) {
	comments := strings.Repeat("word ", 20)
	res := validator.Validate("main content here that is long enough to pass.", comments, validator.Options{
		MinOutputCommWords: 10,
	})
	assert.False(t, res.DropComments)
	assert.Equal(t, comments, res.CommentsText)
}
