package compose

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"flipbook-creator/flipbook"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func solidEntry(name string, w, h int, c color.Color) flipbook.Entry {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return flipbook.NewEntry(img, name, "/src/"+name)
}

func defaultSpec(columns, rows int) RenderSpec {
	return RenderSpec{
		Grid:         GridSpec{Columns: columns, Rows: rows},
		ScalePercent: 100,
		Background:   Background{Mode: BackgroundTransparent},
	}
}

func TestRenderGridPlacement(t *testing.T) {
	entries := []flipbook.Entry{
		solidEntry("0", 64, 64, red),
		solidEntry("1", 64, 64, green),
		solidEntry("2", 64, 64, blue),
		solidEntry("3", 64, 64, white),
	}

	out, err := Render(entries, defaultSpec(2, 2))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 128, 128), out.Bounds())

	// Row-major: entry 0 at (0,0), 1 at (64,0), 2 at (0,64), 3 at (64,64).
	require.Equal(t, red, out.RGBAAt(10, 10))
	require.Equal(t, green, out.RGBAAt(74, 10))
	require.Equal(t, blue, out.RGBAAt(10, 74))
	require.Equal(t, white, out.RGBAAt(74, 74))
}

func TestRenderScaleHalf(t *testing.T) {
	entries := []flipbook.Entry{
		solidEntry("0", 64, 64, red),
		solidEntry("1", 64, 64, green),
		solidEntry("2", 64, 64, blue),
		solidEntry("3", 64, 64, white),
	}

	spec := defaultSpec(2, 2)
	spec.ScalePercent = 50

	out, err := Render(entries, spec)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 64, 64), out.Bounds())
	require.Equal(t, red, out.RGBAAt(5, 5))
	require.Equal(t, white, out.RGBAAt(58, 58))
}

func TestRenderDropsExcessEntries(t *testing.T) {
	entries := []flipbook.Entry{
		solidEntry("0", 8, 8, red),
		solidEntry("1", 8, 8, red),
		solidEntry("2", 8, 8, red),
		solidEntry("3", 8, 8, red),
		solidEntry("4", 8, 8, green), // no cell for this one
	}

	out, err := Render(entries, defaultSpec(2, 2))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, red, out.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRenderStretchesMismatchedEntry(t *testing.T) {
	entries := []flipbook.Entry{
		solidEntry("0", 64, 64, red),
		solidEntry("1", 16, 8, blue), // stretched to 64x64, aspect ignored
	}

	out, err := Render(entries, defaultSpec(2, 1))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 128, 64), out.Bounds())
	require.Equal(t, blue, out.RGBAAt(96, 32))
	require.Equal(t, blue, out.RGBAAt(66, 2))
	require.Equal(t, blue, out.RGBAAt(126, 62))
}

func TestRenderBackgroundFill(t *testing.T) {
	entries := []flipbook.Entry{
		solidEntry("0", 8, 8, red),
		solidEntry("1", 8, 8, red),
		solidEntry("2", 8, 8, red),
	}

	// Transparent: the empty fourth cell keeps zero alpha.
	out, err := Render(entries, defaultSpec(2, 2))
	require.NoError(t, err)
	require.Equal(t, color.RGBA{}, out.RGBAAt(12, 12))

	// Solid: the empty cell carries the background color.
	spec := defaultSpec(2, 2)
	spec.Background = Background{Mode: BackgroundSolid, Color: color.NRGBA{R: 42, G: 42, B: 42, A: 255}}
	out, err = Render(entries, spec)
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 42, G: 42, B: 42, A: 255}, out.RGBAAt(12, 12))
	require.Equal(t, red, out.RGBAAt(4, 4))
}

func TestRenderEmptySequence(t *testing.T) {
	_, err := Render(nil, defaultSpec(2, 2))
	require.ErrorIs(t, err, ErrNoInput)
}

func TestOutputSize(t *testing.T) {
	entries := []flipbook.Entry{solidEntry("0", 100, 50, red)}

	spec := defaultSpec(4, 2)
	w, h := OutputSize(entries, spec)
	require.Equal(t, 400, w)
	require.Equal(t, 100, h)

	spec.ScalePercent = 25
	w, h = OutputSize(entries, spec)
	require.Equal(t, 100, w)
	require.Equal(t, 25, h)

	w, h = OutputSize(nil, spec)
	require.Zero(t, w)
	require.Zero(t, h)
}
