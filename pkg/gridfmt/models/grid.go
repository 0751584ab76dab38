package models

// Grid is a snapshot of the full cell-value matrix, captured in one bulk read.
// Rows are indexed [row][col], 0-based internally; the Cell accessor takes
// 1-based coordinates to match the external boundary. A grid is rectangular:
// every row has the same length. A cell is empty when it holds the empty
// string.
type Grid [][]string

// NewGrid builds a rectangular grid from possibly ragged rows, padding short
// rows with empty cells.
func NewGrid(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]string, width)
		copy(g[i], row)
	}
	return g
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns in the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cell returns the value at the 1-based coordinate, or the empty string when
// the coordinate lies outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 1 || row > g.Rows() || col < 1 || col > g.Cols() {
		return ""
	}
	return g[row-1][col-1]
}

// RowEmpty reports whether every cell of the 1-based row is empty.
// Rows outside the grid are empty.
func (g Grid) RowEmpty(row int) bool {
	if row < 1 || row > g.Rows() {
		return true
	}
	for _, v := range g[row-1] {
		if v != "" {
			return false
		}
	}
	return true
}

// ColEmpty reports whether every cell of the 1-based column is empty.
// Columns outside the grid are empty.
func (g Grid) ColEmpty(col int) bool {
	if col < 1 || col > g.Cols() {
		return true
	}
	for _, row := range g {
		if row[col-1] != "" {
			return false
		}
	}
	return true
}

// ColEmptyWithin reports whether the 1-based column is empty across the
// inclusive row span [top, bottom] only.
func (g Grid) ColEmptyWithin(col, top, bottom int) bool {
	if col < 1 || col > g.Cols() {
		return true
	}
	for row := top; row <= bottom; row++ {
		if g.Cell(row, col) != "" {
			return false
		}
	}
	return true
}

// Extent returns the region covering the whole grid, or the 1x1 region at A1
// for an empty grid.
func (g Grid) Extent() Region {
	if g.Rows() == 0 || g.Cols() == 0 {
		return CellRegion(1, 1)
	}
	return Region{Top: 1, Left: 1, Height: g.Rows(), Width: g.Cols()}
}
