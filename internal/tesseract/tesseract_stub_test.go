//go:build !cgo

package tesseract

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
)

func TestStubReportsUnavailable(t *testing.T) {
	eng := NewEngine()
	_, err := eng.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)), ocr.DefaultOptions())
	require.ErrorIs(t, err, ErrUnavailable)
}
