// Package export serializes OCR results to plain text, CSV and raster
// overlay files. All writes are idempotent and create missing parent
// directories; I/O failures are propagated to the caller without retry.
package export

import (
	"encoding/csv"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/snapocr/internal/utils"
)

// ensureParentDir creates any missing directories above path. Shared by all
// export operations so the directory-creation side effect lives in one place.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// Text writes the line strings joined by newlines, with a trailing newline,
// as UTF-8 text.
func Text(path string, lines []string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write text export: %w", err)
	}
	return nil
}

// CSVTo streams the CSV form of the line list to w: a header row
// "line_no,text" followed by one 1-indexed row per line.
func CSVTo(w io.Writer, lines []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"line_no", "text"}); err != nil {
		return err
	}
	for i, line := range lines {
		if err := cw.Write([]string{strconv.Itoa(i + 1), line}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV writes the CSV form of the line list to a file.
func CSV(path string, lines []string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // G304: Writing user-provided output path is expected
	if err != nil {
		return fmt.Errorf("write csv export: %w", err)
	}

	writeErr := CSVTo(f, lines)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write csv export: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write csv export: %w", closeErr)
	}
	return nil
}

// Overlay writes the overlay image to a raster file, format inferred from
// the file extension.
func Overlay(path string, img image.Image) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := utils.SaveImage(img, path); err != nil {
		return fmt.Errorf("write overlay export: %w", err)
	}
	return nil
}
