package ocr

import (
	"regexp"
	"strings"
)

var (
	reStripChars = regexp.MustCompile(`[^A-Z0-9\s,.\-]+`)
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw OCR text for matching: upper-cases, strips every
// character that is not alphanumeric, whitespace, comma, period, or hyphen,
// collapses whitespace runs to one space, and trims. Total and idempotent.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s)
	s = reStripChars.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
