package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/knowledge"
	"github.com/VishnuKaku/workshipai/internal/ocr"
)

func newSegmenter() *Segmenter {
	return NewSegmenter(knowledge.NewRegistry(), nil)
}

func TestExtractStampsSingleCandidate(t *testing.T) {
	page := "REPUBLIKA HRVATSKA\nZRACNA LUKA SPLIT\n15.03.2022\nULAZ"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, 1, c.Sequence)
	assert.Equal(t, "Croatia", c.Country)
	assert.Equal(t, "SPLIT AIRPORT", c.Airport)
	assert.Equal(t, constants.DirectionArrival, c.Direction)
	assert.Equal(t, "15/03/2022", c.Date)
	assert.Equal(t, 0.9, c.Confidence, "min of country 0.9 (city) and airport 0.9 (token)")
	assert.Contains(t, c.Description, "ZRACNA LUKA SPLIT")
}

func TestExtractStampsAdjacentDateLines(t *testing.T) {
	page := "REPUBLIKA HRVATSKA\n15.03.2022\n16.03.2022\nIZLAZ"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	require.Len(t, candidates, 2, "overlapping windows are not de-duplicated")

	assert.Equal(t, 1, candidates[0].Sequence)
	assert.Equal(t, 2, candidates[1].Sequence)
	assert.Equal(t, "15/03/2022", candidates[0].Date)
	assert.Equal(t, "16/03/2022", candidates[1].Date)
	// Both windows overlap the same context.
	assert.Contains(t, candidates[0].Description, "IZLAZ")
	assert.Contains(t, candidates[1].Description, "REPUBLIKA HRVATSKA")
}

func TestExtractStampsWindowClipping(t *testing.T) {
	page := "L0\nL1\nL2\nL3\n15.03.2022\nL5\nL6\nL7\nL8"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	require.Len(t, candidates, 1)

	// Window is 3 before / 3 after the date block.
	assert.Equal(t, "L1 L2 L3 15.03.2022 L5 L6 L7", candidates[0].Description)
}

func TestExtractStampsNoDates(t *testing.T) {
	page := "REPUBLIKA HRVATSKA\nZAGREB\nULAZ"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	assert.Empty(t, candidates, "a page without date-like lines yields no candidates")
}

func TestExtractStampsEmptyPage(t *testing.T) {
	assert.Empty(t, newSegmenter().ExtractStamps("", nil, nil))
}

func TestExtractStampsPlaceholderDate(t *testing.T) {
	page := "SINGAPORE CHANGI\nDD.MM.YYYY\nDEPARTURE"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Singapore", candidates[0].Country)
	assert.Equal(t, "SINGAPORE CHANGI AIRPORT", candidates[0].Airport)
	assert.Equal(t, constants.DirectionDeparture, candidates[0].Direction)
	assert.Empty(t, candidates[0].Date, "placeholder dates keep the record with an empty date")
}

func TestExtractStampsFailedDateKeepsRecord(t *testing.T) {
	page := "ZAGREB\n31.02.2022\nULAZ"
	blocks := ocr.SplitBlocks(page)

	candidates := newSegmenter().ExtractStamps(page, blocks, nil)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Date)
	assert.Equal(t, "Croatia", candidates[0].Country)
}
