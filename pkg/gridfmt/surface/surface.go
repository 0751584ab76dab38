// Package surface defines the boundary to the hosting grid surface and
// provides two implementations: an excelize-backed workbook sheet and an
// in-memory sheet for tests.
package surface

import "github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"

// Surface is the hosting grid collaborator. All reads and writes of cell
// values, visual attributes, and sheet-level state go through it; the
// formatting core never touches a workbook directly.
//
// Indices are 1-based. A Surface is assumed single-writer within one
// formatting run; the design does not defend against concurrent external
// mutation during a run.
type Surface interface {
	// Dimensions returns the current row and column count of the sheet.
	Dimensions() (rows, cols int, err error)
	// ReadCells bulk-reads the region as a height x width value matrix.
	// Cells outside the sheet read as empty strings.
	ReadCells(r models.Region) ([][]string, error)
	// WriteVisualAttributes layers the set fields of attrs onto every cell
	// of the region.
	WriteVisualAttributes(r models.Region, attrs models.VisualAttributes) error
	// DeleteRow removes the row, shifting subsequent rows up.
	DeleteRow(row int) error
	// DeleteColumn removes the column, shifting subsequent columns left.
	DeleteColumn(col int) error

	// Selection returns the caller's current selection, if any.
	Selection() (models.Region, bool)
	// NamedRanges lists the named ranges registered on the sheet.
	NamedRanges() []models.NamedRange
	// ActiveFilter returns the sheet's active filter, if any.
	ActiveFilter() (models.Filter, bool)
	// RowHidden reports whether the row is hidden.
	RowHidden(row int) bool
	// ColumnHidden reports whether the column is hidden.
	ColumnHidden(col int) bool
	// HasFormula reports whether the cell holds a formula.
	HasFormula(row, col int) bool

	// Bandings lists the alternating-color decorations present on the sheet.
	Bandings() []models.Banding
	// ApplyBanding decorates the region with an alternating-color theme.
	ApplyBanding(r models.Region, theme string, header, footer bool) error

	// Freeze pins the topmost rows and leftmost cols; zero means unfrozen.
	Freeze(rows, cols int) error
	// SetRowHeight sets every row of the region to a fixed pixel height.
	SetRowHeight(r models.Region, px float64) error
	// AutoResize sizes the region's columns to fit their content.
	AutoResize(r models.Region) error
}

// Snapshot captures the full grid in one bulk read. The snapshot is never
// refreshed mid-run: deletions invalidate earlier indices, so passes that
// mutate the sheet must re-capture rather than reuse a stale grid.
func Snapshot(s Surface) (models.Grid, error) {
	rows, cols, err := s.Dimensions()
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return models.Grid{}, nil
	}
	cells, err := s.ReadCells(models.Region{Top: 1, Left: 1, Height: rows, Width: cols})
	if err != nil {
		return nil, err
	}
	return models.NewGrid(cells), nil
}
