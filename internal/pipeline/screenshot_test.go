package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/testutil"
	"github.com/MeKo-Tech/snapocr/internal/theme"
)

// Synthetic rendered screenshots exercise the full decode/detect/preprocess
// path with realistic pixel data instead of uniform fills.

func TestRunDetectsThemeOnRenderedScreenshots(t *testing.T) {
	cases := []struct {
		name string
		cfg  testutil.ScreenshotConfig
		want theme.Theme
	}{
		{"dark editor", testutil.DarkScreenshot("func main() {", "}"), theme.Dark},
		{"light editor", testutil.LightScreenshot("func main() {", "}"), theme.Light},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := testutil.GenerateScreenshot(tc.cfg)
			eng := &stubEngine{}

			res, err := Run(context.Background(), eng, img, DefaultConfig().WithScale(1.0))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Theme)
			assert.Equal(t, 1, eng.calls)
		})
	}
}

func TestRunFileOnRenderedScreenshot(t *testing.T) {
	cfg := testutil.DarkScreenshot("hello world")
	path := filepath.Join(t.TempDir(), "screenshot.png")
	testutil.SaveScreenshot(t, testutil.GenerateScreenshot(cfg), path)

	b := testutil.LineBounds(cfg, 0)
	eng := &stubEngine{frags: []ocr.Fragment{
		quadFrag("hello", 0.9, float64(b.Min.X), float64(b.Min.Y), float64(b.Min.X+35), float64(b.Max.Y)),
		quadFrag("world", 0.8, float64(b.Min.X+42), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y)),
	}}

	res, err := RunFile(context.Background(), eng, path, DefaultConfig().WithScale(1.0))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, res.Lines)
	assert.Equal(t, theme.Dark, res.Theme)
	require.NotNil(t, res.Overlay)
	assert.Equal(t, cfg.Width, res.Overlay.Bounds().Dx())
}
