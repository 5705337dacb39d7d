//go:build !cgo

// Stub used when the binary is built without cgo: the Tesseract bindings
// are unavailable, so recognition reports a descriptive error instead of
// failing at link time.
package tesseract

import (
	"context"
	"errors"
	"image"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
)

// ErrUnavailable is returned when the binary was built without cgo.
var ErrUnavailable = errors.New("tesseract engine unavailable: binary built without cgo")

// Engine is a placeholder for the Tesseract-backed engine.
type Engine struct{}

// NewEngine returns a stub engine whose Recognize always fails.
func NewEngine() *Engine { return &Engine{} }

var _ ocr.Engine = (*Engine)(nil)

// Recognize always returns ErrUnavailable.
func (e *Engine) Recognize(context.Context, image.Image, ocr.Options) ([]ocr.Fragment, error) {
	return nil, ErrUnavailable
}
