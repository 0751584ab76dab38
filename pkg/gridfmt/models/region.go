// Package models defines data structures shared by the grid formatting components.
package models

import "fmt"

// Region represents one contiguous rectangle on the grid.
// Coordinates are 1-based; Height and Width are at least 1.
type Region struct {
	// Top is the first row of the region (1-based).
	Top int `json:"top"`
	// Left is the first column of the region (1-based).
	Left int `json:"left"`
	// Height is the number of rows covered.
	Height int `json:"height"`
	// Width is the number of columns covered.
	Width int `json:"width"`
}

// CellRegion returns the 1x1 region covering a single cell.
func CellRegion(row, col int) Region {
	return Region{Top: row, Left: col, Height: 1, Width: 1}
}

// BoundsRegion returns the region spanning the inclusive corner
// coordinates (top,left) .. (bottom,right).
func BoundsRegion(top, left, bottom, right int) Region {
	return Region{Top: top, Left: left, Height: bottom - top + 1, Width: right - left + 1}
}

// Bottom returns the last row of the region (inclusive).
func (r Region) Bottom() int { return r.Top + r.Height - 1 }

// Right returns the last column of the region (inclusive).
func (r Region) Right() int { return r.Left + r.Width - 1 }

// Cells returns the number of cells covered by the region.
func (r Region) Cells() int { return r.Height * r.Width }

// Contains reports whether the 1-based cell coordinate lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom() && col >= r.Left && col <= r.Right()
}

// Valid reports whether the region has positive extent and 1-based corners.
func (r Region) Valid() bool {
	return r.Top >= 1 && r.Left >= 1 && r.Height >= 1 && r.Width >= 1
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%s", cellName(r.Left, r.Top), cellName(r.Right(), r.Bottom()))
}

// cellName renders a 1-based (col,row) pair in A1 notation.
func cellName(col, row int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}

// RegionSet is an ordered sequence of disjoint regions produced by a single
// target resolution. Order is insertion order and matters only for display;
// formatting is applied independently per region.
type RegionSet []Region

// TotalCells returns the sum of cells over all constituent regions.
func (rs RegionSet) TotalCells() int {
	total := 0
	for _, r := range rs {
		total += r.Cells()
	}
	return total
}

// NamedRange associates an identifier with a region, as registered on the
// hosting surface.
type NamedRange struct {
	// Name is the range identifier.
	Name string `json:"name"`
	// Region is the referenced rectangle.
	Region Region `json:"region"`
}

// Filter describes the active filter of a sheet: the range it governs and
// which rows inside that range it currently hides.
type Filter struct {
	// Region is the filtered range.
	Region Region
	// RowHidden reports whether the filter hides the given 1-based row.
	RowHidden func(row int) bool
}

// Banding describes one alternating-color row decoration present on a sheet.
type Banding struct {
	// Region is the decorated rectangle.
	Region Region `json:"region"`
	// Theme is the color theme name.
	Theme string `json:"theme"`
	// Header indicates a differently-styled header row.
	Header bool `json:"header"`
	// Footer indicates a differently-styled footer row.
	Footer bool `json:"footer"`
}
