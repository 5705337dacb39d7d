// Package pipeline wires the screenshot OCR stages together: theme
// detection, preprocessing, recognition, confidence filtering, line
// reconstruction and overlay rendering. Each run takes an immutable config
// and produces a fresh result; no state is shared between invocations, so
// concurrent runs on different images are safe without coordination.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/MeKo-Tech/snapocr/internal/lines"
	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/overlay"
	"github.com/MeKo-Tech/snapocr/internal/preprocess"
	"github.com/MeKo-Tech/snapocr/internal/theme"
	"github.com/MeKo-Tech/snapocr/internal/utils"
)

// Config holds the configuration for one pipeline run. Construct it once,
// validate at the boundary, and treat it as immutable afterward; the stages
// assume pre-validated values and do not re-check ranges.
type Config struct {
	Preprocess    preprocess.Params
	Engine        ocr.Options
	Lines         lines.Config
	MinConfidence float64 // export/display confidence floor
}

// DefaultConfig returns the tuned defaults for code/log screenshots.
func DefaultConfig() Config {
	p := preprocess.DefaultParams()
	l := lines.DefaultConfig()
	l.YTol = lines.ToleranceForScale(p.Scale)
	return Config{
		Preprocess:    p,
		Engine:        ocr.DefaultOptions(),
		Lines:         l,
		MinConfidence: 0.20,
	}
}

// WithScale returns a copy of the config with the upscale factor changed
// and the line tolerance re-derived from it.
func (c Config) WithScale(scale float64) Config {
	c.Preprocess.Scale = scale
	c.Lines.YTol = lines.ToleranceForScale(scale)
	return c
}

// Validate checks the boundary constraints: a meaningless scale is the one
// value that must be rejected outright, and the confidence floor must be a
// probability.
func (c Config) Validate() error {
	if c.Preprocess.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Preprocess.Scale)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be in [0,1], got %g", c.MinConfidence)
	}
	return nil
}

// Run executes the full pipeline on a decoded image using the caller-owned
// recognition engine. It either returns a complete result or fails the
// whole run; partial results are never produced silently.
func Run(ctx context.Context, eng ocr.Engine, img image.Image, cfg Config) (*RunResult, error) {
	if eng == nil {
		return nil, errors.New("recognition engine is nil")
	}
	if img == nil {
		return nil, errors.New("input image is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	th := theme.Detect(img)

	prepped, err := preprocess.Screenshot(img, th, cfg.Preprocess)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	// The overlay is drawn on the color image at the same resolution the
	// engine saw, so box geometry lines up without rescaling.
	scaled, err := preprocess.Scale(img, cfg.Preprocess.Scale)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	raw, err := eng.Recognize(ctx, prepped, cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}

	filtered := ocr.FilterByConfidence(raw, cfg.MinConfidence)
	lineStrings := lines.Reconstruct(filtered, cfg.Lines)
	annotated := overlay.Render(scaled, filtered, cfg.MinConfidence)

	res := &RunResult{
		Theme:     th,
		Lines:     lineStrings,
		Fragments: filtered,
		Overlay:   annotated,
	}
	res.Summary = summarize(res)
	return res, nil
}

// RunFile loads and decodes an image file, then runs the pipeline on it.
// Decode failures are fatal and reported before any processing begins.
func RunFile(ctx context.Context, eng ocr.Engine, path string, cfg Config) (*RunResult, error) {
	img, _, err := utils.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return Run(ctx, eng, img, cfg)
}
