// Package resolver maps a declarative formatting target to concrete grid
// regions. Resolution is a pure read: it never mutates the grid or the
// surface.
package resolver

import (
	"errors"
	"fmt"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/scan"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

// ErrInvalidTarget indicates the target cannot produce a region: an
// unresolvable reference, an empty result set, or a malformed address.
var ErrInvalidTarget = errors.New("invalid target")

// ErrConfigIncomplete indicates a required parameter for the chosen target
// kind is missing.
var ErrConfigIncomplete = errors.New("incomplete target parameters")

// Resolve maps the target to one or more concrete regions over the grid
// snapshot, consulting the surface for selection, named ranges, filter state,
// and visibility. An unrecognized kind falls back to the entire sheet; every
// other failure is reported as a distinct ErrInvalidTarget condition.
func Resolve(t models.Target, g models.Grid, s surface.Surface) (models.RegionSet, error) {
	switch t.Kind {
	case models.TargetSelection:
		sel, ok := s.Selection()
		if !ok {
			return nil, fmt.Errorf("%w: no active selection", ErrInvalidTarget)
		}
		return models.RegionSet{sel}, nil

	case models.TargetCustomRange:
		if t.Address == "" {
			return nil, fmt.Errorf("%w: custom-range needs an address", ErrConfigIncomplete)
		}
		r, err := surface.ParseRange(t.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
		}
		return models.RegionSet{r}, nil

	case models.TargetDataRange:
		return models.RegionSet{dataRange(g)}, nil

	case models.TargetNamedRange:
		if t.Name == "" {
			return nil, fmt.Errorf("%w: named-range needs a name", ErrConfigIncomplete)
		}
		for _, nr := range s.NamedRanges() {
			if nr.Name == t.Name {
				return models.RegionSet{nr.Region}, nil
			}
		}
		return nil, fmt.Errorf("%w: unknown named range %q", ErrInvalidTarget, t.Name)

	case models.TargetDetectTable:
		sel, ok := s.Selection()
		if !ok {
			// No anchor to grow from: degrade to the full data region.
			return models.RegionSet{dataRange(g)}, nil
		}
		return models.RegionSet{scan.DetectBoundary(g, sel.Top, sel.Left)}, nil

	case models.TargetFilteredRows:
		return filteredRows(s)

	case models.TargetConditional:
		return conditionalCells(t.Condition, g, s)

	case models.TargetCurrentColumn:
		sel, ok := s.Selection()
		if !ok {
			return nil, fmt.Errorf("%w: no active selection", ErrInvalidTarget)
		}
		height := g.Rows()
		if height < 1 {
			height = 1
		}
		return models.RegionSet{{Top: 1, Left: sel.Left, Height: height, Width: 1}}, nil

	case models.TargetCurrentRow:
		sel, ok := s.Selection()
		if !ok {
			return nil, fmt.Errorf("%w: no active selection", ErrInvalidTarget)
		}
		width := g.Cols()
		if width < 1 {
			width = 1
		}
		return models.RegionSet{{Top: sel.Top, Left: 1, Height: 1, Width: width}}, nil

	case models.TargetVisibleCells:
		return visibleCells(g, s)

	case models.TargetEntireSheet:
		return models.RegionSet{g.Extent()}, nil

	default:
		// Unrecognized kinds fall back to the whole sheet.
		return models.RegionSet{g.Extent()}, nil
	}
}

// dataRange is the minimal bounding box of all non-empty cells, or the 1x1
// region at A1 when the grid holds no data.
func dataRange(g models.Grid) models.Region {
	if r, ok := scan.DataBounds(g); ok {
		return r
	}
	return models.CellRegion(1, 1)
}

// filteredRows returns the visible rows of the active filter as one region
// per contiguous run, each spanning the filter's column range.
func filteredRows(s surface.Surface) (models.RegionSet, error) {
	filter, ok := s.ActiveFilter()
	if !ok {
		return nil, fmt.Errorf("%w: no active filter", ErrInvalidTarget)
	}
	var set models.RegionSet
	runStart := 0
	flush := func(end int) {
		if runStart > 0 {
			set = append(set, models.BoundsRegion(runStart, filter.Region.Left, end, filter.Region.Right()))
			runStart = 0
		}
	}
	for row := filter.Region.Top; row <= filter.Region.Bottom(); row++ {
		if filter.RowHidden != nil && filter.RowHidden(row) {
			flush(row - 1)
			continue
		}
		if runStart == 0 {
			runStart = row
		}
	}
	flush(filter.Region.Bottom())
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: filter hides every row", ErrInvalidTarget)
	}
	return set, nil
}

// visibleCells crosses non-hidden rows with non-hidden columns, each
// surviving cell becoming its own 1x1 region.
func visibleCells(g models.Grid, s surface.Surface) (models.RegionSet, error) {
	var set models.RegionSet
	for row := 1; row <= g.Rows(); row++ {
		if s.RowHidden(row) {
			continue
		}
		for col := 1; col <= g.Cols(); col++ {
			if s.ColumnHidden(col) {
				continue
			}
			set = append(set, models.CellRegion(row, col))
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no visible cells", ErrInvalidTarget)
	}
	return set, nil
}
