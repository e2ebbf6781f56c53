package detect

import (
	"log/slog"
	"strings"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/knowledge"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

// airportIndicators are generic keywords suggesting a block names an airport.
var airportIndicators = []string{
	"AIRPORT", "INTERNATIONAL", "TERMINAL", "INTL",
	"AEROPORT", "AEROPORTO", "AEROPUERTO", "FLUGHAFEN", "ZRACNA LUKA", "HAVALIMANI",
}

// AirportDetector infers the airport named on a stamped page for a resolved
// country.
type AirportDetector struct {
	kb     *knowledge.Registry
	logger *slog.Logger
}

func NewAirportDetector(kb *knowledge.Registry, logger *slog.Logger) *AirportDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &AirportDetector{kb: kb, logger: logger}
}

// Detect resolves the airport for a country against all page blocks. Token
// matches in airport declaration order score 0.9; a generic airport indicator
// falls back to the country's main airport (0.7) or the raw block text (0.6);
// the bare main-airport fallback scores 0.5; everything else is the unknown
// placeholder at 0.3.
func (d *AirportDetector) Detect(blocks []ocr.TextBlock, country string) Detection[string] {
	c, ok := d.kb.Find(country)
	if !ok {
		return Detection[string]{Value: constants.UnknownAirport, Confidence: constants.ConfidenceUnknown}
	}

	joined := ocr.JoinText(blocks)
	for _, ap := range c.Airports {
		for _, tok := range ap.Tokens {
			if strings.Contains(joined, strings.ToUpper(tok)) {
				d.logger.Debug("airport matched by token", "token", tok, "airport", ap.Name)
				return Detection[string]{Value: canonicalName(ap.Name), Confidence: constants.ConfidenceTokenMatch}
			}
		}
	}

	for _, b := range blocks {
		for _, ind := range airportIndicators {
			if !strings.Contains(b.Text, ind) {
				continue
			}
			if len(c.Airports) > 0 {
				return Detection[string]{Value: canonicalName(c.Airports[0].Name), Confidence: constants.ConfidenceIndicatorMain}
			}
			return Detection[string]{Value: b.Text, Confidence: constants.ConfidenceIndicatorBlock}
		}
	}

	if len(c.Airports) > 0 {
		return Detection[string]{Value: canonicalName(c.Airports[0].Name), Confidence: constants.ConfidenceDefault}
	}
	return Detection[string]{Value: constants.UnknownAirport, Confidence: constants.ConfidenceUnknown}
}

// canonicalName upper-cases a display name and appends "AIRPORT" when absent.
func canonicalName(name string) string {
	n := strings.ToUpper(name)
	if !strings.Contains(n, "AIRPORT") {
		n += " AIRPORT"
	}
	return n
}
