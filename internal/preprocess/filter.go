package preprocess

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// applyGamma brightens midtones via a 256-entry lookup table:
// out[i] = round(255 * (i/255)^(1/gamma)).
func applyGamma(g *image.Gray, gamma float64) *image.Gray {
	table := gammaLUT(gamma)
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetGray(x, y, color.Gray{Y: table[g.GrayAt(b.Min.X+x, b.Min.Y+y).Y]})
		}
	}
	return out
}

func gammaLUT(gamma float64) [256]uint8 {
	inv := 1.0 / math.Max(gamma, 1e-6)
	var table [256]uint8
	for i := range table {
		v := math.Round(math.Pow(float64(i)/255.0, inv) * 255.0)
		table[i] = uint8(v) //nolint:gosec // G115: result of pow on [0,1] scaled to [0,255]
	}
	return table
}

// bilateralGray applies an edge-preserving bilateral filter to a grayscale
// image. Pixels are averaged within the given diameter, weighted by both
// spatial distance and intensity difference, so compression artifacts are
// smoothed while text edges survive.
func bilateralGray(g *image.Gray, diameter int, sigmaColor, sigmaSpace float64) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	radius := diameter / 2
	if radius < 1 {
		radius = 1
	}

	// Precompute the spatial kernel and a color-difference lookup table.
	spatial := make([]float64, (2*radius+1)*(2*radius+1))
	twoSigmaSpaceSq := 2 * sigmaSpace * sigmaSpace
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*(2*radius+1)+(dx+radius)] = math.Exp(-d2 / twoSigmaSpaceSq)
		}
	}
	var colorW [256]float64
	twoSigmaColorSq := 2 * sigmaColor * sigmaColor
	for i := range colorW {
		colorW[i] = math.Exp(-float64(i*i) / twoSigmaColorSq)
	}

	at := func(x, y int) uint8 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return g.GrayAt(b.Min.X+x, b.Min.Y+y).Y
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := at(x, y)
			var sum, norm float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					v := at(x+dx, y+dy)
					diff := int(v) - int(center)
					if diff < 0 {
						diff = -diff
					}
					wgt := spatial[(dy+radius)*(2*radius+1)+(dx+radius)] * colorW[diff]
					sum += wgt * float64(v)
					norm += wgt
				}
			}
			out.SetGray(x, y, color.Gray{Y: clamp8(sum / norm)})
		}
	}
	return out
}

// unsharpGray sharpens a grayscale image with an unsharp mask:
// sharp = (1+amount)*src - amount*gaussian(src, sigma), clamped to [0,255].
func unsharpGray(g *image.Gray, amount, sigma float64) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	blurred := blur.Gaussian(g, gaussianRadius(sigma))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := float64(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			bl := float64(blurred.RGBAAt(x, y).R)
			out.SetGray(x, y, color.Gray{Y: clamp8((1+amount)*src - amount*bl)})
		}
	}
	return out
}

// gaussianRadius converts a Gaussian sigma into the kernel radius
// blur.Gaussian expects. Three sigmas covers the kernel's meaningful
// support.
func gaussianRadius(sigma float64) float64 {
	return 3 * sigma
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) //nolint:gosec // G115: clamped to [0,255] above
}
