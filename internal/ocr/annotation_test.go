package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	data := []byte(`{
		"textAnnotations": [
			{"description": "REPUBLIKA HRVATSKA\n15.03.2022\nULAZ"},
			{"description": "HRVATSKA", "boundingPoly": {"vertices": [{"x":10,"y":10},{"x":90,"y":10},{"x":90,"y":40},{"x":10,"y":40}]}}
		]
	}`)

	page, err := ParsePage(data)
	require.NoError(t, err)
	require.Len(t, page.Annotations, 2)
	assert.Equal(t, "REPUBLIKA HRVATSKA\n15.03.2022\nULAZ", page.FullText())
	require.NotNil(t, page.Annotations[1].BoundingPoly)
	assert.Len(t, page.Annotations[1].BoundingPoly.Vertices, 4)
}

func TestParsePageRejectsBadShape(t *testing.T) {
	_, err := ParsePage([]byte(`{"textAnnotations": [{"boundingPoly": {}}]}`))
	assert.Error(t, err, "annotations without description must fail validation")

	_, err = ParsePage([]byte(`{"textAnnotations": "nope"}`))
	assert.Error(t, err)

	_, err = ParsePage([]byte(`not json`))
	assert.Error(t, err)
}

func TestParsePageNoAnnotations(t *testing.T) {
	page, err := ParsePage([]byte(`{"textAnnotations": []}`))
	require.NoError(t, err)
	assert.Empty(t, page.FullText(), "annotation-free page degrades to empty text, not an error")
}
