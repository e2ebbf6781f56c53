package ocr

import (
	"encoding/json"
)

// Vertex is one corner of a bounding polygon in image pixel coordinates.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingPoly is the quadrilateral enclosing a detected text region.
type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

// Annotation is one text region reported by the external OCR service. The
// first annotation of a page carries the full-page text.
type Annotation struct {
	Description  string        `json:"description"`
	BoundingPoly *BoundingPoly `json:"boundingPoly,omitempty"`
}

// Page is the decoded OCR payload for one document page.
type Page struct {
	Annotations []Annotation `json:"textAnnotations"`
}

// FullText returns the page's full text, which by convention is the first
// annotation's description. An annotation-free page yields "".
func (p Page) FullText() string {
	if len(p.Annotations) == 0 {
		return ""
	}
	return p.Annotations[0].Description
}

// ParsePage validates raw OCR JSON against the annotation schema and decodes
// it. A page with zero annotations is valid; downstream it degrades to an
// empty candidate list.
func ParsePage(data []byte) (Page, error) {
	var page Page
	if err := ValidateJSONAgainstSchema(BuildAnnotationSchema(), data); err != nil {
		return page, err
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return page, err
	}
	return page, nil
}
