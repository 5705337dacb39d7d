// Package preprocess prepares screenshot rasters for text recognition:
// upscaling, local contrast enhancement, theme-dependent gamma correction,
// edge-preserving smoothing and sharpening. Each step produces a new image;
// inputs are never mutated.
package preprocess

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/MeKo-Tech/snapocr/internal/theme"
)

// scaleTolerance is the band around 1.0 inside which resizing is skipped.
const scaleTolerance = 1e-6

// Params holds the preprocessing tuning knobs. The defaults are tuned
// empirically for code/log screenshots; they are configurable rather than
// hard-coded so a different recognition engine can be retuned against them.
type Params struct {
	Scale          float64 // upscale factor applied before enhancement
	DarkGamma      float64 // gamma applied to dark-theme screenshots
	ClipLimit      float64 // CLAHE histogram clip limit
	TileGrid       int     // CLAHE tile grid (TileGrid x TileGrid)
	BilateralD     int     // bilateral filter diameter in pixels
	BilateralSigma float64 // bilateral color and space sigma
	SharpenAmount  float64 // unsharp mask strength
	SharpenSigma   float64 // unsharp mask Gaussian sigma
}

// DefaultParams returns the tuned defaults for screenshot OCR.
func DefaultParams() Params {
	return Params{
		Scale:          2.5,
		DarkGamma:      1.25,
		ClipLimit:      2.0,
		TileGrid:       8,
		BilateralD:     7,
		BilateralSigma: 50,
		SharpenAmount:  0.7,
		SharpenSigma:   3,
	}
}

// Scale resizes an image by the given factor using Lanczos resampling.
// Factors within tolerance of 1.0 return an untouched clone.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if img == nil {
		return nil, errors.New("input image is nil")
	}
	if factor <= 0 {
		return nil, errors.New("scale factor must be positive")
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("input image is empty")
	}
	if math.Abs(factor-1.0) <= scaleTolerance {
		return imaging.Clone(img), nil
	}
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

// Screenshot runs the full preprocessing chain and returns a sharpened
// single-channel grayscale image at the upscaled resolution. Upscaling
// happens before enhancement; enhancing first and upscaling after would
// blur the detail the enhancement added.
func Screenshot(img image.Image, th theme.Theme, p Params) (*image.Gray, error) {
	scaled, err := Scale(img, p.Scale)
	if err != nil {
		return nil, err
	}

	enhanced := applyCLAHE(scaled, p.ClipLimit, p.TileGrid)
	gray := toGray(imaging.Grayscale(enhanced))

	if th == theme.Dark {
		gray = applyGamma(gray, p.DarkGamma)
	}

	smoothed := bilateralGray(gray, p.BilateralD, p.BilateralSigma, p.BilateralSigma)
	return unsharpGray(smoothed, p.SharpenAmount, p.SharpenSigma), nil
}

// toGray converts an NRGBA grayscale image into a single-channel image.Gray.
func toGray(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			// Grayscale conversion already happened; R == G == B.
			out.SetGray(x, y, color.Gray{Y: img.NRGBAAt(b.Min.X+x, b.Min.Y+y).R})
		}
	}
	return out
}
