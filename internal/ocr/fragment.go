// Package ocr defines the contract between the preprocessing pipeline and
// the external text recognition engine: the fragment data model, the engine
// interface and the confidence filter applied to raw detections.
package ocr

import (
	"github.com/MeKo-Tech/snapocr/internal/utils"
)

// Fragment is one detected unit of text: a bounding polygon (typically a
// quadrilateral, not necessarily axis-aligned), the recognized string and a
// confidence score in [0,1]. Fragments are produced by the recognition
// engine and are immutable once created.
type Fragment struct {
	Polygon    []utils.Point `json:"polygon"`
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"`
}

// Bounds returns the axis-aligned bounding box of the fragment's polygon.
func (f Fragment) Bounds() utils.Box {
	return utils.BoundingBox(f.Polygon)
}

// FilterByConfidence returns the fragments with confidence at or above the
// threshold, preserving relative order. The input slice is not modified.
func FilterByConfidence(frags []Fragment, minConf float64) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if f.Confidence >= minConf {
			out = append(out, f)
		}
	}
	return out
}
