// Package compose lays an ordered image sequence into a rows×columns
// grid and renders the composite onto a single RGBA canvas.
package compose

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"flipbook-creator/flipbook"
)

// ErrNoInput is reported when a render is attempted on an empty
// sequence. No output is produced.
var ErrNoInput = errors.New("no images to compose")

// BackgroundMode selects how empty canvas area is filled.
type BackgroundMode int

const (
	BackgroundTransparent BackgroundMode = iota
	BackgroundSolid
)

// Background is the canvas fill policy.
type Background struct {
	Mode  BackgroundMode
	Color color.NRGBA
}

// RenderSpec fully determines the composed output: grid shape, output
// scale as a percentage in [1, 100], and background fill.
type RenderSpec struct {
	Grid         GridSpec
	ScalePercent int
	Background   Background
}

// scaler is the smooth resampling filter used both for stretching
// mismatched entries into their cell and for the final output rescale.
var scaler xdraw.Scaler = xdraw.CatmullRom

// Render composes the entries into a single image. Cell size is taken
// from the first entry; entries of a different size are stretched to
// fill their cell, aspect ratio ignored. Entries beyond Columns*Rows
// are dropped silently.
func Render(entries []flipbook.Entry, spec RenderSpec) (*image.RGBA, error) {
	if len(entries) == 0 {
		return nil, ErrNoInput
	}
	grid := spec.Grid.ClampFor(0) // floor both sides at 1
	scale := clampScale(spec.ScalePercent)

	cellW := entries[0].Width
	cellH := entries[0].Height
	canvas := image.NewRGBA(image.Rect(0, 0, cellW*grid.Columns, cellH*grid.Rows))

	if spec.Background.Mode == BackgroundSolid {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(spec.Background.Color), image.Point{}, draw.Src)
	}

	for idx, entry := range entries {
		if idx >= grid.Cells() {
			break
		}
		row := idx / grid.Columns
		col := idx % grid.Columns
		cell := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)

		if entry.Width != cellW || entry.Height != cellH {
			scaler.Scale(canvas, cell, entry.Image, entry.Image.Bounds(), draw.Over, nil)
		} else {
			draw.Draw(canvas, cell, entry.Image, entry.Image.Bounds().Min, draw.Over)
		}
	}

	if scale == 100 {
		return canvas, nil
	}
	outW := canvas.Bounds().Dx() * scale / 100
	outH := canvas.Bounds().Dy() * scale / 100
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scaler.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out, nil
}

// OutputSize returns the final pixel dimensions Render would produce,
// for the resolution readout. Zero when the sequence is empty.
func OutputSize(entries []flipbook.Entry, spec RenderSpec) (w, h int) {
	if len(entries) == 0 {
		return 0, 0
	}
	grid := spec.Grid.ClampFor(0)
	scale := clampScale(spec.ScalePercent)
	w = entries[0].Width * grid.Columns * scale / 100
	h = entries[0].Height * grid.Rows * scale / 100
	return w, h
}

// CellSize returns the scaled per-cell dimensions.
func CellSize(entries []flipbook.Entry, spec RenderSpec) (w, h int) {
	if len(entries) == 0 {
		return 0, 0
	}
	scale := clampScale(spec.ScalePercent)
	return entries[0].Width * scale / 100, entries[0].Height * scale / 100
}

func clampScale(p int) int {
	if p < 1 {
		return 1
	}
	if p > 100 {
		return 100
	}
	return p
}
