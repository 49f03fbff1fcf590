package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/metadata"
)

func TestExtractLanguageFromHTMLLangAttr(t *testing.T) {
	doc, err := htmldom.ParseString(`<html lang="en-US"><head></head><body></body></html>`)
	require.NoError(t, err)

	m := metadata.Extract(doc, metadata.Options{})
	assert.Equal(t, "en", m.Language)
}

func TestExtractLanguageFromHTTPEquiv(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head><meta http-equiv="content-language" content="fr_CA"></head><body></body></html>`)
	require.NoError(t, err)

	m := metadata.Extract(doc, metadata.Options{})
	assert.Equal(t, "fr", m.Language)
}

func TestExtractLanguageFromMetaName(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head><meta name="language" content="DE"></head><body></body></html>`)
	require.NoError(t, err)

	m := metadata.Extract(doc, metadata.Options{})
	assert.Equal(t, "de", m.Language)
}

func TestExtractLanguageEmptyWhenAbsent(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><head></head><body></body></html>`)
	require.NoError(t, err)

	m := metadata.Extract(doc, metadata.Options{})
	assert.Empty(t, m.Language)
}

func TestExtractLanguagePrefersHTMLAttrOverMeta(t *testing.T) {
	doc, err := htmldom.ParseString(`<html lang="es"><head><meta name="language" content="en"></head><body></body></html>`)
	require.NoError(t, err)

	m := metadata.Extract(doc, metadata.Options{})
	assert.Equal(t, "es", m.Language)
}
