package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/snapocr/internal/utils"
)

func quad(x1, y1, x2, y2 float64) []utils.Point {
	return []utils.Point{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

func TestFragmentBounds(t *testing.T) {
	// Non-axis-aligned quadrilateral collapses to its min/max box.
	f := Fragment{Polygon: []utils.Point{{X: 5, Y: 1}, {X: 12, Y: 3}, {X: 10, Y: 9}, {X: 3, Y: 7}}}
	b := f.Bounds()
	assert.Equal(t, utils.Box{MinX: 3, MinY: 1, MaxX: 12, MaxY: 9}, b)
}

func TestFilterByConfidence(t *testing.T) {
	frags := []Fragment{
		{Polygon: quad(0, 0, 10, 10), Text: "keep", Confidence: 0.9},
		{Polygon: quad(0, 20, 10, 30), Text: "drop", Confidence: 0.1},
		{Polygon: quad(0, 40, 10, 50), Text: "edge", Confidence: 0.5},
		{Polygon: quad(0, 60, 10, 70), Text: "also", Confidence: 0.51},
	}

	got := FilterByConfidence(frags, 0.5)
	assert.Len(t, got, 3)
	assert.Equal(t, "keep", got[0].Text)
	assert.Equal(t, "edge", got[1].Text)
	assert.Equal(t, "also", got[2].Text)

	// Count is exact: everything at or above the threshold survives.
	want := 0
	for _, f := range frags {
		if f.Confidence >= 0.5 {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestFilterByConfidenceEmpty(t *testing.T) {
	assert.Empty(t, FilterByConfidence(nil, 0.2))
	assert.Empty(t, FilterByConfidence([]Fragment{{Text: "x", Confidence: 0.1}}, 0.2))
}

func TestFilterByConfidenceZeroThresholdKeepsAll(t *testing.T) {
	frags := []Fragment{{Confidence: 0}, {Confidence: 1}}
	assert.Len(t, FilterByConfidence(frags, 0), 2)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, "eng", o.Language)
	assert.True(t, o.UseAllowlist)
	assert.Contains(t, o.Allowlist, "{")
	assert.Contains(t, o.Allowlist, "0")
	assert.Contains(t, o.Allowlist, " ")
	assert.InDelta(t, 0.55, o.TextThreshold, 1e-9)
}
