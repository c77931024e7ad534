package compose

import "math"

// GridSpec is the columns/rows pair constraining how many cells the
// composed texture holds.
type GridSpec struct {
	Columns int
	Rows    int
}

// Cells returns the cell count of the grid.
func (g GridSpec) Cells() int {
	return g.Columns * g.Rows
}

// ClampFor corrects the grid upward so it can hold count entries:
// columns >= ceil(count/rows) and rows >= ceil(count/columns), with
// both sides at least 1.
func (g GridSpec) ClampFor(count int) GridSpec {
	if g.Columns < 1 {
		g.Columns = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	if count <= 0 {
		return g
	}
	if minCols := ceilDiv(count, g.Rows); g.Columns < minCols {
		g.Columns = minCols
	}
	if minRows := ceilDiv(count, g.Columns); g.Rows < minRows {
		g.Rows = minRows
	}
	return g
}

// MinGrid returns the squarest (rows, cols) holding count entries:
// start from a ceil(sqrt(count)) square and reduce columns while the
// grid still fits without them. rows*cols >= count and
// (cols-1)*rows < count hold for every count >= 1.
func MinGrid(count int) (rows, cols int) {
	if count <= 0 {
		return 1, 1
	}
	rows = int(math.Ceil(math.Sqrt(float64(count))))
	cols = rows
	for (cols-1)*rows >= count {
		cols--
	}
	return rows, cols
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
