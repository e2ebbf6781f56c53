package ocr

import "strings"

// TextBlock is one line of page text in reading order. Raw preserves the OCR
// output (arrows and separators survive there); Text is the normalized form
// used for matching. Index is the original line index. Immutable once produced.
type TextBlock struct {
	Raw   string
	Text  string
	Index int
	Poly  *BoundingPoly
}

// SplitBlocks splits full-page OCR text into non-empty TextBlocks in reading
// order. Blank lines are dropped but original line indices are kept.
func SplitBlocks(pageText string) []TextBlock {
	lines := strings.Split(pageText, "\n")
	blocks := make([]TextBlock, 0, len(lines))
	for i, line := range lines {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		text := Normalize(raw)
		if text == "" {
			continue
		}
		blocks = append(blocks, TextBlock{Raw: raw, Text: text, Index: i})
	}
	return blocks
}

// JoinRaw concatenates the raw text of blocks with single spaces.
func JoinRaw(blocks []TextBlock) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Raw
	}
	return strings.Join(parts, " ")
}

// JoinText concatenates the normalized text of blocks with single spaces.
func JoinText(blocks []TextBlock) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, " ")
}
