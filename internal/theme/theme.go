// Package theme classifies screenshots as dark or light from pixel
// statistics. The classification drives theme-dependent preprocessing.
package theme

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Theme is a binary screenshot brightness classification.
type Theme string

const (
	// Dark indicates a low-luminance background (dark editor theme).
	Dark Theme = "dark"
	// Light indicates a high-luminance background.
	Light Theme = "light"
)

// Thresholds on grayscale intensity statistics. Screenshots with a mean
// below darkMean are dark, above lightMean are light; the band in between
// is resolved by the std-based rule in Detect.
const (
	darkMean      = 115.0
	lightMean     = 165.0
	ambiguousMean = 140.0
	ambiguousStd  = 45.0
)

// Detect classifies an image from the mean and standard deviation of its
// grayscale intensities. It always returns one of the two labels.
func Detect(img image.Image) Theme {
	mean, std := grayStats(img)

	switch {
	case mean < darkMean:
		return Dark
	case mean > lightMean:
		return Light
	case mean < ambiguousMean && std > ambiguousStd:
		return Dark
	default:
		return Light
	}
}

// grayStats computes the mean and standard deviation of the grayscale
// intensity channel in the 0..255 range.
func grayStats(img image.Image) (mean, std float64) {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	n := float64(b.Dx() * b.Dy())
	if n == 0 {
		return 0, 0
	}

	var sum, sumSq float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Grayscale output has R == G == B.
			v := float64(gray.NRGBAAt(x, y).R)
			sum += v
			sumSq += v * v
		}
	}
	mean = sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
