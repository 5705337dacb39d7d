// Package testutil generates synthetic screenshot images for tests:
// uniform themed backgrounds with lines of bitmap-font text, approximating
// what a code editor or terminal capture looks like.
package testutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig describes a synthetic screenshot to generate.
type ScreenshotConfig struct {
	Lines      []string
	Width      int
	Height     int
	Background color.Color
	Foreground color.Color
	Margin     int
	LineHeight int
}

// DarkScreenshot returns a config resembling a dark editor theme.
func DarkScreenshot(lines ...string) ScreenshotConfig {
	return ScreenshotConfig{
		Lines:      lines,
		Width:      320,
		Height:     240,
		Background: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Foreground: color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Margin:     10,
		LineHeight: 20,
	}
}

// LightScreenshot returns a config resembling a light editor theme.
func LightScreenshot(lines ...string) ScreenshotConfig {
	cfg := DarkScreenshot(lines...)
	cfg.Background = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	cfg.Foreground = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	return cfg
}

// GenerateScreenshot renders the configured lines onto a uniform background
// with the fixed 7x13 bitmap font.
func GenerateScreenshot(cfg ScreenshotConfig) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: cfg.Background}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: cfg.Foreground},
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range cfg.Lines {
		drawer.Dot = fixed.P(cfg.Margin, cfg.Margin+i*cfg.LineHeight+ascent)
		drawer.DrawString(line)
	}
	return img
}

// LineBounds returns the approximate pixel rectangle the i-th line occupies,
// derived from the fixed glyph metrics rather than measured from pixels.
func LineBounds(cfg ScreenshotConfig, i int) image.Rectangle {
	face := basicfont.Face7x13
	w := font.MeasureString(face, cfg.Lines[i]).Ceil()
	top := cfg.Margin + i*cfg.LineHeight
	return image.Rect(cfg.Margin, top, cfg.Margin+w, top+face.Metrics().Height.Ceil())
}

// SaveScreenshot writes a generated image as PNG, failing the test on error.
func SaveScreenshot(t *testing.T, img image.Image, path string) {
	t.Helper()

	f, err := os.Create(path) //nolint:gosec // G304: test-controlled path
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}
