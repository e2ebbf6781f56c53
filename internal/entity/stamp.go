package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

// CandidateStamp is one tentative border-crossing record produced by the
// segmenter, before review and persistence. Sequence numbers are contiguous
// starting at 1 for a given page. Confidence is min(country, airport).
type CandidateStamp struct {
	Sequence    int                 `json:"sequence"`
	Country     string              `json:"country"`
	Airport     string              `json:"airport"`
	Direction   constants.Direction `json:"direction"`
	Date        string              `json:"date,omitempty"`
	Description string              `json:"description"`
	Confidence  float64             `json:"confidence"`
	Bounds      *ocr.BoundingPoly   `json:"bounds,omitempty"`
	StampID     string              `json:"stamp_id,omitempty"`
	StampImage  string              `json:"stamp_image,omitempty"`
}

// PassportEntry is the persisted shape of a candidate stamp.
type PassportEntry struct {
	ID          uuid.UUID           `json:"id"`
	Sequence    int                 `json:"sequence"`
	Country     string              `json:"country"`
	Airport     string              `json:"airport"`
	Direction   constants.Direction `json:"direction"`
	Date        string              `json:"date,omitempty"`
	Description string              `json:"description"`
	Confidence  float64             `json:"confidence"`
	StampImage  string              `json:"stamp_image,omitempty"`
	ManualEntry bool                `json:"manual_entry"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// FromCandidate converts an extracted candidate into a persistable entry.
func FromCandidate(c CandidateStamp) *PassportEntry {
	return &PassportEntry{
		ID:          uuid.New(),
		Sequence:    c.Sequence,
		Country:     c.Country,
		Airport:     c.Airport,
		Direction:   c.Direction,
		Date:        c.Date,
		Description: c.Description,
		Confidence:  c.Confidence,
		StampImage:  c.StampImage,
	}
}

// GeocodeResult is a resolved (latitude, longitude) pair.
type GeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
