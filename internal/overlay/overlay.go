// Package overlay renders detection results onto a copy of the scaled
// source image: one bounding box and confidence-annotated label per
// fragment.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/utils"
)

// annotation drawing style, matching the tool's green-on-screenshot look.
var annotationColor = color.RGBA{G: 255, A: 255}

const (
	boxThickness = 2
	labelOffset  = 8 // pixels between the label baseline and the box top
)

// Render draws bounding boxes and labels for every fragment at or above
// minConf onto a copy of img. The threshold re-filter is defensive; callers
// normally pass an already-filtered list. The input image is never mutated
// and the output has identical dimensions.
func Render(img image.Image, frags []ocr.Fragment, minConf float64) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}

	for _, f := range frags {
		if f.Confidence < minConf {
			continue
		}
		rect := f.Bounds().ToRect(dst.Bounds())
		utils.DrawRect(dst, rect, annotationColor, boxThickness)

		label := fmt.Sprintf("%s (%.2f)", f.Text, f.Confidence)
		// Baseline sits just above the box, clamped so the label never
		// draws past the top edge.
		baseline := rect.Min.Y - labelOffset
		if baseline < utils.LabelHeight {
			baseline = utils.LabelHeight
		}
		utils.DrawLabel(dst, label, rect.Min.X, baseline, annotationColor)
	}
	return dst
}
