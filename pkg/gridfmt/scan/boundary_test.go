package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// isolatedBlock is a 3x2 table at rows 3-5, cols 2-3, surrounded by empty
// rows and columns.
func isolatedBlock() models.Grid {
	return models.NewGrid([][]string{
		{"", "", "", "", ""},
		{"", "", "", "", ""},
		{"", "h1", "h2", "", ""},
		{"", "a", "b", "", ""},
		{"", "c", "d", "", ""},
		{"", "", "", "", ""},
	})
}

func TestDetectBoundaryAnySeedInsideBlock(t *testing.T) {
	g := isolatedBlock()
	want := models.Region{Top: 3, Left: 2, Height: 3, Width: 2}

	for row := 3; row <= 5; row++ {
		for col := 2; col <= 3; col++ {
			assert.Equal(t, want, DetectBoundary(g, row, col), "seed (%d,%d)", row, col)
		}
	}
}

func TestDetectBoundaryEmptySeed(t *testing.T) {
	g := isolatedBlock()

	assert.Equal(t, models.CellRegion(1, 1), DetectBoundary(g, 1, 1))
	assert.Equal(t, models.CellRegion(6, 5), DetectBoundary(g, 6, 5))
	assert.Equal(t, models.CellRegion(99, 99), DetectBoundary(g, 99, 99), "seed outside the grid reads as empty")
}

func TestDetectBoundarySingleCell(t *testing.T) {
	g := models.NewGrid([][]string{
		{"", "", ""},
		{"", "x", ""},
		{"", "", ""},
	})

	assert.Equal(t, models.CellRegion(2, 2), DetectBoundary(g, 2, 2))
}

func TestDetectBoundaryStopsAtGridEdges(t *testing.T) {
	g := models.NewGrid([][]string{
		{"a", "b"},
		{"c", "d"},
	})

	assert.Equal(t, models.Region{Top: 1, Left: 1, Height: 2, Width: 2}, DetectBoundary(g, 1, 1))
}

// Column expansion tests emptiness only within the finalized row span, so a
// column holding data outside that span does not pull the boundary sideways.
func TestDetectBoundaryColumnSpanRestriction(t *testing.T) {
	g := models.NewGrid([][]string{
		{"", "", "", "far"},
		{"", "", "", ""},
		{"", "a", "b", ""},
		{"", "c", "d", ""},
		{"", "", "", ""},
	})

	assert.Equal(t, models.Region{Top: 3, Left: 2, Height: 2, Width: 2}, DetectBoundary(g, 3, 2))
}

// A row that is only empty inside the table but has data elsewhere still
// joins the table: the row emptiness test runs across the whole grid width.
func TestDetectBoundaryRowSpanFullWidth(t *testing.T) {
	g := models.NewGrid([][]string{
		{"", "", "", ""},
		{"", "a", "b", ""},
		{"", "", "", "note"},
		{"", "c", "d", ""},
		{"", "", "", ""},
	})

	assert.Equal(t, models.Region{Top: 2, Left: 2, Height: 3, Width: 3}, DetectBoundary(g, 2, 2))
}
