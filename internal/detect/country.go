package detect

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/knowledge"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

var reCodeToken = regexp.MustCompile(`^[A-Z]{2}$`)

// CountryDetector infers the issuing country of a stamped page.
type CountryDetector struct {
	kb     *knowledge.Registry
	logger *slog.Logger
}

func NewCountryDetector(kb *knowledge.Registry, logger *slog.Logger) *CountryDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountryDetector{kb: kb, logger: logger}
}

// Detect applies the country rules in strict priority order, first success
// wins: standalone two-letter code (0.95), city/alias substring in table
// order (0.9), literal country name (0.8), then the fixed default (0.5).
// The default-on-miss is deliberate: the pipeline always emits a guess.
func (d *CountryDetector) Detect(pageText string) Detection[string] {
	text := ocr.Normalize(pageText)

	// Standalone two-letter tokens, bounded by start/whitespace/colon.
	for _, tok := range strings.Fields(strings.ReplaceAll(text, ":", " ")) {
		if !reCodeToken.MatchString(tok) {
			continue
		}
		if name, ok := d.kb.ByCode(tok); ok {
			d.logger.Debug("country matched by code", "code", tok, "country", name)
			return Detection[string]{Value: name, Confidence: constants.ConfidenceCodeMatch}
		}
	}

	// City table order wins over text position. Keep that tie-break.
	for _, entry := range d.kb.CityEntries() {
		if strings.Contains(text, entry.City) {
			d.logger.Debug("country matched by city", "city", entry.City, "country", entry.Country)
			return Detection[string]{Value: entry.Country, Confidence: constants.ConfidenceCityMatch}
		}
	}

	for _, c := range d.kb.Countries() {
		if strings.Contains(text, strings.ToUpper(c.Name)) {
			d.logger.Debug("country matched by name", "country", c.Name)
			return Detection[string]{Value: c.Name, Confidence: constants.ConfidenceNameMatch}
		}
	}

	return Detection[string]{Value: constants.DefaultCountry, Confidence: constants.ConfidenceDefault}
}
