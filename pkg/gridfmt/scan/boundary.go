package scan

import "github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"

// DetectBoundary grows a bounding box from the seed cell to the maximal
// contiguous non-empty rectangle containing it.
//
// Rows are finalized first: the box expands upward and downward until it hits
// a row that is empty across the entire grid width, or a grid edge. Columns
// are then probed left and right, with the emptiness test restricted to the
// finalized row span rather than the whole grid.
//
// An empty seed cell yields the seed's own 1x1 region; "not inside a table"
// is a valid outcome, not an error.
func DetectBoundary(g models.Grid, seedRow, seedCol int) models.Region {
	if g.Cell(seedRow, seedCol) == "" {
		return models.CellRegion(seedRow, seedCol)
	}

	top := seedRow
	for top > 1 && !g.RowEmpty(top-1) {
		top--
	}
	bottom := seedRow
	for bottom < g.Rows() && !g.RowEmpty(bottom+1) {
		bottom++
	}

	left := seedCol
	for left > 1 && !g.ColEmptyWithin(left-1, top, bottom) {
		left--
	}
	right := seedCol
	for right < g.Cols() && !g.ColEmptyWithin(right+1, top, bottom) {
		right++
	}

	return models.BoundsRegion(top, left, bottom, right)
}
