package detect

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

// Arrow glyphs and ASCII approximations. Left-pointing means arrival (entering
// the country), right-pointing means departure. Checked against raw text:
// normalization strips the glyphs.
var (
	arrivalGlyphs   = []string{"←", "⬅", "◄", "◀", "<-", "<<"}
	departureGlyphs = []string{"→", "➡", "►", "▶", "->", ">>"}

	// Arrow-shaped patterns, departure set checked first.
	departurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`-{1,3}>`),
		regexp.MustCompile(`={1,3}>`),
		regexp.MustCompile(`>{2,}`),
	}
	arrivalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<-{1,3}`),
		regexp.MustCompile(`<={1,3}`),
		regexp.MustCompile(`<{2,}`),
	}

	// Keyword sets. Departure before arrival: short keywords like OUT and IN
	// can both appear as substrings of unrelated text, so the precedence is
	// part of the observable behavior.
	departureKeywords = []string{"DEPARTURE", "DEPART", "DEPARTED", "EXIT", "SALIDA", "SORTIE", "AUSREISE", "IZLAZ", "OUT"}
	arrivalKeywords   = []string{"ARRIVAL", "ARRIVED", "ADMITTED", "ENTRY", "ENTRADA", "ENTREE", "EINREISE", "ULAZ", "IN"}
)

// DirectionClassifier decides whether a stamp marks an arrival or a departure.
type DirectionClassifier struct {
	logger *slog.Logger
}

func NewDirectionClassifier(logger *slog.Logger) *DirectionClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectionClassifier{logger: logger}
}

// Detect classifies from the raw context text plus all page blocks: arrow
// glyphs first (arrival set, then departure set), then per-block arrow
// patterns (departure set first), then keywords (departure set first), and
// ARRIVAL as the default.
func (c *DirectionClassifier) Detect(contextText string, blocks []ocr.TextBlock) constants.Direction {
	combined := contextText + " " + ocr.JoinRaw(blocks)

	for _, g := range arrivalGlyphs {
		if strings.Contains(combined, g) {
			return constants.DirectionArrival
		}
	}
	for _, g := range departureGlyphs {
		if strings.Contains(combined, g) {
			return constants.DirectionDeparture
		}
	}

	for _, b := range blocks {
		for _, p := range departurePatterns {
			if p.MatchString(b.Raw) {
				return constants.DirectionDeparture
			}
		}
		for _, p := range arrivalPatterns {
			if p.MatchString(b.Raw) {
				return constants.DirectionArrival
			}
		}
	}

	upper := strings.ToUpper(combined)
	for _, kw := range departureKeywords {
		if strings.Contains(upper, kw) {
			return constants.DirectionDeparture
		}
	}
	for _, kw := range arrivalKeywords {
		if strings.Contains(upper, kw) {
			return constants.DirectionArrival
		}
	}

	return constants.DirectionArrival
}
