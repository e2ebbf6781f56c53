package stamp

import (
	"image"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/VishnuKaku/workshipai/internal/detect"
	"github.com/VishnuKaku/workshipai/internal/entity"
	"github.com/VishnuKaku/workshipai/internal/knowledge"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

// contextWindow is the number of blocks taken on each side of a date-bearing
// block when building the description context.
const contextWindow = 3

var (
	// Date-like groupings: numeric day/month/year with ./-// separators or a
	// spelled month, plus the literal DD/MM placeholder some stamps carry.
	reDateLike    = regexp.MustCompile(`\d{1,2}\s*[./\-]\s*\d{1,2}\s*[./\-]\s*\d{2,4}|\d{1,2}\s+[A-Za-z]{3,9}\.?\s+\d{2,4}|\d{4}-\d{2}-\d{2}`)
	rePlaceholder = regexp.MustCompile(`(?i)\bDD\s*[./\-]\s*MM\s*[./\-]\s*(?:YY){1,2}\b`)
)

// Segmenter scans a page's text blocks for date-bearing lines and assembles
// one candidate stamp per match, using the detection cascades.
type Segmenter struct {
	country   *detect.CountryDetector
	airport   *detect.AirportDetector
	direction *detect.DirectionClassifier
	cropper   *Cropper
	logger    *slog.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithCropper enables per-candidate stamp image cropping when a page image is
// supplied to ExtractStamps.
func WithCropper(c *Cropper) Option {
	return func(s *Segmenter) { s.cropper = c }
}

func NewSegmenter(kb *knowledge.Registry, logger *slog.Logger, opts ...Option) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Segmenter{
		country:   detect.NewCountryDetector(kb, logger),
		airport:   detect.NewAirportDetector(kb, logger),
		direction: detect.NewDirectionClassifier(logger),
		logger:    logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ExtractStamps emits one candidate per date-bearing block, in reading order.
// Country and airport detection run over the whole page; direction uses the
// local context window. Overlapping windows are not de-duplicated: adjacent
// date lines produce separate candidates. pageImage may be nil; when present
// and the matching block carries a bounding polygon, the stamp image is
// cropped and referenced on the candidate.
func (s *Segmenter) ExtractStamps(pageText string, blocks []ocr.TextBlock, pageImage image.Image) []entity.CandidateStamp {
	candidates := make([]entity.CandidateStamp, 0)
	if len(blocks) == 0 {
		return candidates
	}

	countryDet := s.country.Detect(pageText)

	seq := 0
	for i, b := range blocks {
		if !isDateLike(b.Raw) {
			continue
		}
		seq++

		lo := i - contextWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + contextWindow + 1
		if hi > len(blocks) {
			hi = len(blocks)
		}
		description := ocr.JoinRaw(blocks[lo:hi])

		airportDet := s.airport.Detect(blocks, countryDet.Value)

		cand := entity.CandidateStamp{
			Sequence:    seq,
			Country:     countryDet.Value,
			Airport:     airportDet.Value,
			Direction:   s.direction.Detect(description, blocks),
			Date:        detect.FormatDate(b.Raw),
			Description: description,
			Confidence:  math.Min(countryDet.Confidence, airportDet.Confidence),
			Bounds:      b.Poly,
		}

		if s.cropper != nil && pageImage != nil && b.Poly != nil {
			cand.StampID = uuid.NewString()
			ref, err := s.cropper.Crop(pageImage, *b.Poly, cand.StampID)
			if err != nil {
				// A bad bounding box loses the image, never the record.
				s.logger.Warn("stamp crop failed", "sequence", seq, "error", err)
			} else {
				cand.StampImage = ref
			}
		}

		candidates = append(candidates, cand)
	}

	return candidates
}

func isDateLike(raw string) bool {
	if reDateLike.MatchString(raw) {
		return true
	}
	return rePlaceholder.MatchString(strings.ToUpper(raw))
}
