//go:build cgo

// Package tesseract provides the default recognition engine backed by the
// Tesseract OCR library via gosseract. It adapts word-level boxes and
// confidences into the pipeline's fragment model. Builds without cgo get a
// stub that reports the engine as unavailable.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/utils"
)

// Engine recognizes text using a local Tesseract installation. The zero
// value is ready to use; each Recognize call owns its own client, so a
// single Engine handle may be shared across sequential or concurrent runs.
type Engine struct{}

// NewEngine returns a Tesseract-backed recognition engine.
func NewEngine() *Engine { return &Engine{} }

var _ ocr.Engine = (*Engine)(nil)

// Recognize runs word-level OCR on the preprocessed image. The GPU flag in
// opts is ignored: Tesseract inference is CPU-only. Engine failures (missing
// language data, library errors) are propagated unchanged.
func (e *Engine) Recognize(ctx context.Context, img image.Image, opts ocr.Options) ([]ocr.Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("recognize: input image is nil")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("recognize: encode input: %w", err)
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(opts.Language); err != nil {
		return nil, fmt.Errorf("recognize: set language %q: %w", opts.Language, err)
	}
	if opts.UseAllowlist && opts.Allowlist != "" {
		if err := client.SetWhitelist(opts.Allowlist); err != nil {
			return nil, fmt.Errorf("recognize: set allowlist: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("recognize: set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}

	frags := make([]ocr.Fragment, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		frags = append(frags, ocr.Fragment{
			Polygon:    rectPolygon(box.Box),
			Text:       box.Word,
			Confidence: box.Confidence / 100.0,
		})
	}
	return frags, nil
}

// rectPolygon converts an axis-aligned box into the quadrilateral polygon
// form the fragment model expects.
func rectPolygon(r image.Rectangle) []utils.Point {
	return []utils.Point{
		{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Max.Y)},
		{X: float64(r.Min.X), Y: float64(r.Max.Y)},
	}
}
