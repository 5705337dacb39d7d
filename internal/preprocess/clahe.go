package preprocess

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// applyCLAHE performs contrast-limited adaptive histogram equalization on
// the L channel in Lab space, leaving chroma untouched. The image is split
// into a tiles x tiles grid; each tile gets its own clipped-histogram
// mapping, and per-pixel lookups interpolate bilinearly between the four
// surrounding tile mappings to avoid visible tile seams.
func applyCLAHE(img image.Image, clipLimit float64, tiles int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}
	if tiles < 1 {
		tiles = 1
	}

	// Decompose into Lab once; L is quantized to 256 bins.
	lum := make([]float64, w*h)
	chA := make([]float64, w*h)
	chB := make([]float64, w*h)
	alpha := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			c := colorful.Color{R: float64(r) / 65535, G: float64(g) / 65535, B: float64(bl) / 65535}
			l, la, lb := c.Lab()
			i := y*w + x
			lum[i] = l
			chA[i] = la
			chB[i] = lb
			alpha[i] = uint8(a >> 8) //nolint:gosec // G115: 16-bit alpha always fits after shift
		}
	}

	maps := buildTileMappings(lum, w, h, tiles, clipLimit)

	tileW := float64(w) / float64(tiles)
	tileH := float64(h) / float64(tiles)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			bin := lumBin(lum[i])
			mapped := interpolateTiles(maps, tiles, tileW, tileH, float64(x), float64(y), bin)
			c := colorful.Lab(mapped/255.0, chA[i], chB[i]).Clamped()
			r, g, bl := c.RGB255()
			j := out.PixOffset(x, y)
			out.Pix[j+0] = r
			out.Pix[j+1] = g
			out.Pix[j+2] = bl
			out.Pix[j+3] = alpha[i]
		}
	}
	return out
}

// lumBin quantizes an L value in [0,1] into a 0..255 histogram bin.
func lumBin(l float64) int {
	bin := int(l*255.0 + 0.5)
	if bin < 0 {
		bin = 0
	}
	if bin > 255 {
		bin = 255
	}
	return bin
}

// buildTileMappings computes a clipped-histogram equalization lookup table
// for every tile. Excess above the clip ceiling is redistributed uniformly
// so the total mass is preserved.
func buildTileMappings(lum []float64, w, h, tiles int, clipLimit float64) [][256]float64 {
	maps := make([][256]float64, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			x0 := tx * w / tiles
			x1 := (tx + 1) * w / tiles
			y0 := ty * h / tiles
			y1 := (ty + 1) * h / tiles
			if x1 <= x0 {
				x1 = x0 + 1
			}
			if y1 <= y0 {
				y1 = y0 + 1
			}

			var hist [256]float64
			count := 0
			for y := y0; y < y1 && y < h; y++ {
				for x := x0; x < x1 && x < w; x++ {
					hist[lumBin(lum[y*w+x])]++
					count++
				}
			}
			if count == 0 {
				count = 1
			}

			clipHistogram(&hist, clipLimit, count)

			// CDF normalized to 0..255.
			var cdf float64
			m := &maps[ty*tiles+tx]
			for i := range hist {
				cdf += hist[i]
				m[i] = cdf / float64(count) * 255.0
			}
		}
	}
	return maps
}

// clipHistogram clamps bins at clipLimit times the uniform bin height and
// spreads the clipped excess evenly across all bins.
func clipHistogram(hist *[256]float64, clipLimit float64, count int) {
	if clipLimit <= 0 {
		return
	}
	ceiling := clipLimit * float64(count) / 256.0
	if ceiling < 1 {
		ceiling = 1
	}
	var excess float64
	for i := range hist {
		if hist[i] > ceiling {
			excess += hist[i] - ceiling
			hist[i] = ceiling
		}
	}
	share := excess / 256.0
	for i := range hist {
		hist[i] += share
	}
}

// interpolateTiles evaluates the equalized value for a pixel by blending the
// mappings of the four tiles whose centers surround it.
func interpolateTiles(maps [][256]float64, tiles int, tileW, tileH, x, y float64, bin int) float64 {
	// Position relative to tile centers.
	fx := x/tileW - 0.5
	fy := y/tileH - 0.5

	tx0 := int(math.Floor(fx))
	ty0 := int(math.Floor(fy))
	wx := fx - float64(tx0)
	wy := fy - float64(ty0)

	clampTile := func(t int) int {
		if t < 0 {
			return 0
		}
		if t >= tiles {
			return tiles - 1
		}
		return t
	}

	tx1 := clampTile(tx0 + 1)
	ty1 := clampTile(ty0 + 1)
	tx0 = clampTile(tx0)
	ty0 = clampTile(ty0)

	v00 := maps[ty0*tiles+tx0][bin]
	v10 := maps[ty0*tiles+tx1][bin]
	v01 := maps[ty1*tiles+tx0][bin]
	v11 := maps[ty1*tiles+tx1][bin]

	top := v00*(1-wx) + v10*wx
	bot := v01*(1-wx) + v11*wx
	return top*(1-wy) + bot*wy
}
