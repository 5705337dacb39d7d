package ocr

import (
	"context"
	"image"
)

// DefaultCodeAllowlist restricts recognition to characters common in code
// and log screenshots, reducing confusion between visually similar glyphs.
const DefaultCodeAllowlist = "0123456789abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	`_()[]{}.,=:+-*/\"'` + ";<>#@! "

// Options bundles the recognition tuning knobs passed to an Engine.
// Constructed once per run and never mutated afterward.
type Options struct {
	Language string // recognition language tag, e.g. "eng"
	GPU      bool   // hardware acceleration, if the engine supports it

	// Detector/recognizer tuning knobs, tuned for screenshots.
	TextThreshold  float64
	LowText        float64
	LinkThreshold  float64
	ContrastThs    float64
	AdjustContrast float64

	// UseAllowlist restricts recognition to Allowlist characters.
	UseAllowlist bool
	Allowlist    string
}

// DefaultOptions returns engine options tuned for code/log screenshots.
func DefaultOptions() Options {
	return Options{
		Language:       "eng",
		GPU:            false,
		TextThreshold:  0.55,
		LowText:        0.2,
		LinkThreshold:  0.35,
		ContrastThs:    0.03,
		AdjustContrast: 0.8,
		UseAllowlist:   true,
		Allowlist:      DefaultCodeAllowlist,
	}
}

// Engine is the external recognition collaborator. Given a preprocessed
// single-channel image it returns detected fragments with polygons, text
// and confidences. The call is synchronous and may be expensive (model
// load plus inference); implementations must be safe for sequential reuse
// across runs. Errors are propagated unchanged to the caller.
type Engine interface {
	Recognize(ctx context.Context, img image.Image, opts Options) ([]Fragment, error)
}
