package utils

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageError represents errors that can occur during image handling.
type ImageError struct {
	Operation string
	Err       error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image error in %s: %v", e.Operation, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

// SupportedImageExtensions lists supported file extensions for loading and saving.
var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff"}

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ImageMetadata captures lightweight file and pixel information.
type ImageMetadata struct {
	Path      string
	Format    string
	SizeBytes int64
	Width     int
	Height    int
}

// LoadImage opens and decodes an image file, returning the image and metadata.
// Decode failures are fatal errors reported to the caller; no format probing
// beyond the registered decoders is attempted.
func LoadImage(path string) (image.Image, ImageMetadata, error) {
	if path == "" {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: errors.New("empty path")}
	}
	if !IsSupportedImage(path) {
		return nil, ImageMetadata{}, &ImageError{
			Operation: "load",
			Err:       fmt.Errorf("unsupported format: %s", filepath.Ext(path)),
		}
	}

	f, err := os.Open(path) //nolint:gosec // G304: Reading user-provided image file path is expected
	if err != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing image file: %v\n", err)
		}
	}()

	fi, statErr := f.Stat()
	if statErr != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: statErr}
	}

	img, format, decErr := image.Decode(f)
	if decErr != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "decode", Err: decErr}
	}

	b := img.Bounds()
	meta := ImageMetadata{
		Path:      path,
		Format:    format,
		SizeBytes: fi.Size(),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	return img, meta, nil
}

// SaveImage encodes an image to the given path, format inferred from the
// file extension. The parent directory must already exist.
func SaveImage(img image.Image, path string) error {
	if img == nil {
		return &ImageError{Operation: "save", Err: errors.New("input image is nil")}
	}
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Create(path) //nolint:gosec // G304: Writing user-provided output path is expected
	if err != nil {
		return &ImageError{Operation: "save", Err: err}
	}

	var encErr error
	switch ext {
	case ".png":
		encErr = png.Encode(f, img)
	case ".jpg", ".jpeg":
		encErr = jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case ".bmp":
		encErr = bmp.Encode(f, img)
	case ".tif", ".tiff":
		encErr = tiff.Encode(f, img, nil)
	default:
		encErr = fmt.Errorf("unsupported format: %s", ext)
	}

	closeErr := f.Close()
	if encErr != nil {
		return &ImageError{Operation: "encode", Err: encErr}
	}
	if closeErr != nil {
		return &ImageError{Operation: "save", Err: closeErr}
	}
	return nil
}
