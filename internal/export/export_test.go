package export

import (
	"encoding/csv"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/snapocr/internal/utils"
)

func TestTextExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, Text(path, []string{"ab", "cd"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", string(data))
}

func TestTextExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, Text(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestTextExportIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, Text(path, []string{"x"}))
	require.NoError(t, Text(path, []string{"x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestTextExportCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")
	require.NoError(t, Text(path, []string{"deep"}))
	assert.FileExists(t, path)
}

func TestCSVExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	lines := []string{"ab", "cd"}
	require.NoError(t, CSV(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line_no,text\n1,ab\n2,cd\n", string(data))

	// Re-reading reconstructs the original line list.
	r := csv.NewReader(strings.NewReader(string(data)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"line_no", "text"}, rows[0])
	var got []string
	for _, row := range rows[1:] {
		got = append(got, row[1])
	}
	assert.Equal(t, lines, got)
}

func TestCSVExportQuotesCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, CSV(path, []string{`a,b`, `say "hi"`}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, `a,b`, rows[1][1])
	assert.Equal(t, `say "hi"`, rows[2][1])
}

func TestOverlayExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "overlay.png")
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	require.NoError(t, Overlay(path, img))

	loaded, _, err := utils.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Bounds().Dx())
	assert.Equal(t, 8, loaded.Bounds().Dy())
}

func TestOverlayExportUnsupportedExtension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	err := Overlay(filepath.Join(t.TempDir(), "overlay.webp"), img)
	require.Error(t, err)
}

func TestExportUnwritablePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission errors are not enforced")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	defer func() { _ = os.Chmod(dir, 0o700) }()

	err := Text(filepath.Join(dir, "sub", "out.txt"), []string{"x"})
	require.Error(t, err)
}
