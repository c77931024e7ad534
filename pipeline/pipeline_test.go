package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"flipbook-creator/compose"
	"flipbook-creator/encode"
	"flipbook-creator/flipbook"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLoadFolderSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Banana.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "apple.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "cherry.png"), color.NRGBA{A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	loader := NewLoader(zerolog.Nop())
	entries, err := loader.LoadFolder(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "apple.png", entries[0].Name)
	require.Equal(t, "Banana.png", entries[1].Name)
	require.Equal(t, "cherry.png", entries[2].Name)
	require.Equal(t, 8, entries[0].Width)
	require.Equal(t, 8, entries[0].Height)
	require.Equal(t, filepath.Join(dir, "apple.png"), entries[0].Path)
}

func TestLoadFolderMissingDir(t *testing.T) {
	loader := NewLoader(zerolog.Nop())
	_, err := loader.LoadFolder(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestLoadFilesSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, color.NRGBA{R: 255, A: 255})
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))

	loader := NewLoader(zerolog.Nop())
	entries := loader.LoadFiles([]string{good, bad, filepath.Join(dir, "missing.png")})
	require.Len(t, entries, 1)
	require.Equal(t, "good.png", entries[0].Name)
}

func TestExportFile(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	entries := []flipbook.Entry{
		flipbook.NewEntry(img, "a.png", "/src/a.png"),
		flipbook.NewEntry(img, "b.png", "/src/b.png"),
	}
	spec := compose.RenderSpec{
		Grid:         compose.GridSpec{Columns: 2, Rows: 1},
		ScalePercent: 100,
		Background:   compose.Background{Mode: compose.BackgroundTransparent},
	}

	out := filepath.Join(t.TempDir(), "sheet.png")
	exporter := NewExporter(zerolog.Nop())
	require.NoError(t, exporter.ExportFile(out, entries, spec))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 8), decoded.Bounds())
}

func TestExportEmptySequence(t *testing.T) {
	exporter := NewExporter(zerolog.Nop())
	var buf bytes.Buffer
	err := exporter.Export(&buf, nil, compose.RenderSpec{ScalePercent: 100}, encode.FormatPNG)
	require.ErrorIs(t, err, compose.ErrNoInput)
	require.Zero(t, buf.Len())
}
