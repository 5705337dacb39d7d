package utils

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawRectOutline(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	green := color.RGBA{G: 255, A: 255}
	DrawRect(dst, image.Rect(2, 3, 10, 8), green, 1)

	// corners on the outline
	assert.Equal(t, green, dst.RGBAAt(2, 3))
	assert.Equal(t, green, dst.RGBAAt(9, 7))
	// interior untouched
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 5))
	// outside untouched
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(15, 15))
}

func TestDrawRectOutsideBoundsIsNoop(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	DrawRect(dst, image.Rect(10, 10, 20, 20), color.White, 2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.RGBA{}, dst.RGBAAt(x, y))
		}
	}
}

func TestDrawLabelMarksPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 80, 20))
	DrawLabel(dst, "ok", 2, 14, color.RGBA{R: 255, A: 255})

	marked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if dst.RGBAAt(x, y).R == 255 {
				marked++
			}
		}
	}
	assert.Positive(t, marked)
}
