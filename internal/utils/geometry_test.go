package utils

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxDimensions(t *testing.T) {
	b := Box{MinX: 2, MinY: 4, MaxX: 10, MaxY: 20}
	assert.InDelta(t, 8.0, b.Width(), 1e-9)
	assert.InDelta(t, 16.0, b.Height(), 1e-9)
	assert.InDelta(t, 12.0, b.CenterY(), 1e-9)
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{{3, 7}, {1, 9}, {5, 2}, {4, 4}}
	b := BoundingBox(pts)
	assert.Equal(t, Box{MinX: 1, MinY: 2, MaxX: 5, MaxY: 9}, b)
}

func TestBoundingBoxEmpty(t *testing.T) {
	assert.Equal(t, Box{}, BoundingBox(nil))
}

func TestBoxToRectClamps(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 50)
	r := Box{MinX: -5, MinY: 10.2, MaxX: 200, MaxY: 20.8}.ToRect(bounds)
	assert.Equal(t, image.Rect(0, 10, 100, 21), r)
}

func TestBoxToRectDegenerate(t *testing.T) {
	bounds := image.Rect(0, 0, 10, 10)
	r := Box{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}.ToRect(bounds)
	assert.True(t, r.Empty())
}
