// Package charset implements spec.md §6's ExtractBytes charset
// handling: detect charset via <meta charset> or <meta
// http-equiv=Content-Type> within the first 1024 bytes, transcode
// lossy to UTF-8, default UTF-8. Falls back to
// github.com/saintfish/chardet statistical detection (a teacher
// dependency the teacher declares but never imports) when no
// in-document hint is present, transcoding via
// golang.org/x/text/encoding/htmlindex.
package charset

import (
	"regexp"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

const sniffWindow = 1024

var (
	metaCharsetRE     = regexp.MustCompile(`(?i)<meta[^>]+charset\s*=\s*["']?([a-zA-Z0-9_-]+)`)
	metaContentTypeRE = regexp.MustCompile(`(?i)<meta[^>]+http-equiv\s*=\s*["']?content-type["']?[^>]*content\s*=\s*["'][^"']*charset=([a-zA-Z0-9_-]+)`)
)

// ToUTF8 detects buf's charset and transcodes it to UTF-8, replacing
// undecodable bytes with the Unicode replacement character rather than
// failing (spec.md §7: "Encoding errors are replaced with the Unicode
// replacement character; never fatal").
func ToUTF8(buf []byte) string {
	name := sniffDeclaredCharset(buf)
	if name == "" {
		name = sniffStatistical(buf)
	}
	if name == "" || isUTF8Name(name) {
		return strings.ToValidUTF8(string(buf), "�")
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return strings.ToValidUTF8(string(buf), "�")
	}
	out, err := enc.NewDecoder().Bytes(buf)
	if err != nil && len(out) == 0 {
		return strings.ToValidUTF8(string(buf), "�")
	}
	return string(out)
}

func sniffDeclaredCharset(buf []byte) string {
	window := buf
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	if m := metaCharsetRE.FindSubmatch(window); m != nil {
		return string(m[1])
	}
	if m := metaContentTypeRE.FindSubmatch(window); m != nil {
		return string(m[1])
	}
	return ""
}

func sniffStatistical(buf []byte) string {
	result, err := chardet.NewHtmlDetector().DetectBest(buf)
	if err != nil || result == nil {
		return ""
	}
	return result.Charset
}

func isUTF8Name(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == "utf-8" || n == "utf8"
}
