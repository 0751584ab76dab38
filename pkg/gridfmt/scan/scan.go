// Package scan provides read-only analysis over grid snapshots: empty-line
// detection, data bounds, and table boundary detection. Nothing in this
// package writes to the surface.
package scan

import "github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"

// EmptyColumns returns the 1-based indices of columns that are entirely
// empty, in descending order. Deleting them in that order keeps the
// remaining indices valid while the deletions shift columns left.
func EmptyColumns(g models.Grid) []int {
	var cols []int
	for col := g.Cols(); col >= 1; col-- {
		if g.ColEmpty(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// EmptyRows returns the 1-based indices of rows that are entirely empty, in
// descending order, so deletion proceeds bottom-to-top.
func EmptyRows(g models.Grid) []int {
	var rows []int
	for row := g.Rows(); row >= 1; row-- {
		if g.RowEmpty(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// DataBounds returns the minimal bounding box of all non-empty cells. The
// second return value is false when the grid holds no data at all.
func DataBounds(g models.Grid) (models.Region, bool) {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range g {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return models.Region{}, false
	}
	return models.BoundsRegion(minRow+1, minCol+1, maxRow+1, maxCol+1), true
}

// NonEmptyCells counts the non-empty cells inside the region, clamped to the
// grid extent.
func NonEmptyCells(g models.Grid, r models.Region) int {
	count := 0
	for row := r.Top; row <= r.Bottom() && row <= g.Rows(); row++ {
		for col := r.Left; col <= r.Right() && col <= g.Cols(); col++ {
			if g.Cell(row, col) != "" {
				count++
			}
		}
	}
	return count
}
