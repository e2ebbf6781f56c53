package constants

// DefaultCountry is emitted when no detection rule matches. The pipeline
// always reports a guess, never "unrecognized".
const DefaultCountry = "Croatia"

// UnknownAirport is the fallback airport name for countries outside the
// knowledge base or with no declared airports.
const UnknownAirport = "Unknown International Airport"

// Confidence levels assigned by the detection cascades. These are heuristic
// specificity indicators, not probabilities.
const (
	ConfidenceCodeMatch      = 0.95
	ConfidenceCityMatch      = 0.9
	ConfidenceNameMatch      = 0.8
	ConfidenceTokenMatch     = 0.9
	ConfidenceIndicatorMain  = 0.7
	ConfidenceIndicatorBlock = 0.6
	ConfidenceDefault        = 0.5
	ConfidenceUnknown        = 0.3
)
