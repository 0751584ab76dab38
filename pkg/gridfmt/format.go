// Package gridfmt formats a two-dimensional grid of cell values: it prunes
// empty rows and columns, resolves a declarative target into concrete
// regions, and applies visual attributes to them, chunking large regions to
// keep each surface call bounded. Runs are single-threaded and synchronous;
// every stage failure except target resolution is recorded and skipped over
// rather than aborting the run.
package gridfmt

import (
	"fmt"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/logging"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/resolver"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/scan"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

// Options tunes the chunked execution path.
type Options struct {
	// LargeGridThreshold is the resolved cell count above which formatting
	// switches to the chunked path.
	LargeGridThreshold int
	// ChunkRows is the maximum row count of one band on the chunked path,
	// bounding the cells touched by a single surface call.
	ChunkRows int
}

// DefaultOptions returns the default chunking limits.
func DefaultOptions() Options {
	return Options{
		LargeGridThreshold: 10_000,
		ChunkRows:          1_000,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.LargeGridThreshold <= 0 {
		o.LargeGridThreshold = def.LargeGridThreshold
	}
	if o.ChunkRows <= 0 {
		o.ChunkRows = def.ChunkRows
	}
	return o
}

// concern is one batched attribute write: alignment, borders, font, or
// number format. Banding, freezing, and header bolding are not concerns;
// each of those is a single bounded call regardless of region size and is
// never chunked.
type concern struct {
	name  string
	attrs models.VisualAttributes
}

// Run executes one formatting run against the surface. The returned result
// always carries the deletion counts and every recoverable error gathered,
// in stage-and-chunk execution order; Run never panics past this entry
// point. Target resolution failure is the only fatal condition: it stops
// the run, preserving whatever pruning already happened.
func Run(s surface.Surface, cfg Config, target models.Target, opts Options) *models.OperationResult {
	opts = opts.withDefaults()
	res := &models.OperationResult{}
	log := logging.Logger()

	defer func() {
		if r := recover(); r != nil {
			res.AddError(stageErr("internal", panicErr(r)))
		}
	}()

	if cfg.DeleteEmptyColumns || cfg.DeleteEmptyRows {
		pruneEmptyLines(s, cfg, res)
		log.Debug("pruned empty lines", "rows", res.DeletedRows, "cols", res.DeletedCols)
	}

	grid, err := surface.Snapshot(s)
	if err != nil {
		res.AddError(stageErr("resolve", err))
		return res
	}
	set, err := resolver.Resolve(target, grid, s)
	if err != nil {
		res.AddError(stageErr("resolve", err))
		return res
	}
	log.Debug("target resolved", "kind", string(target.Kind), "regions", len(set), "cells", set.TotalCells())

	applyCellFormatting(s, cfg, set, opts, res)

	if cfg.FreezeHeaderRow || cfg.FreezeFirstColumn {
		rows, cols := 0, 0
		if cfg.FreezeHeaderRow {
			rows = 1
		}
		if cfg.FreezeFirstColumn {
			cols = 1
		}
		if err := s.Freeze(rows, cols); err != nil {
			res.AddError(stageErr("freeze", err))
		}
	}

	if cfg.Banding.Enabled {
		applyBanding(s, cfg, set, res)
	}

	if cfg.HeaderBold {
		bold := true
		for _, r := range set {
			header := models.Region{Top: r.Top, Left: r.Left, Height: 1, Width: r.Width}
			if err := s.WriteVisualAttributes(header, models.VisualAttributes{FontBold: &bold}); err != nil {
				res.AddError(stageErr("header", err))
			}
		}
	}

	if cfg.RowHeight != nil {
		for _, r := range set {
			if err := s.SetRowHeight(r, *cfg.RowHeight); err != nil {
				res.AddError(stageErr("row-height", err))
			}
		}
	}

	if cfg.AutoAdjust {
		for _, r := range set {
			if err := s.AutoResize(r); err != nil {
				res.AddError(stageErr("auto-resize", err))
			}
		}
	}

	log.Debug("run finished", "summary", res.Summary())
	return res
}

// pruneEmptyLines deletes empty columns right-to-left, then re-reads the
// sheet and deletes empty rows bottom-to-top. The re-read matters: removing
// columns can turn a partially-empty row into an empty one, and deletions
// invalidate indices captured before them. Deletion is best-effort, not
// atomic: a failed index is recorded and the remaining candidates are still
// attempted.
func pruneEmptyLines(s surface.Surface, cfg Config, res *models.OperationResult) {
	if cfg.DeleteEmptyColumns {
		grid, err := surface.Snapshot(s)
		if err != nil {
			res.AddError(stageErr("prune", err))
		} else {
			for _, col := range scan.EmptyColumns(grid) {
				if err := s.DeleteColumn(col); err != nil {
					res.AddError(stageErr("prune", err))
					continue
				}
				res.DeletedCols++
			}
		}
	}
	if cfg.DeleteEmptyRows {
		grid, err := surface.Snapshot(s)
		if err != nil {
			res.AddError(stageErr("prune", err))
			return
		}
		for _, row := range scan.EmptyRows(grid) {
			if err := s.DeleteRow(row); err != nil {
				res.AddError(stageErr("prune", err))
				continue
			}
			res.DeletedRows++
		}
	}
}

// applyCellFormatting writes the per-cell concerns over the region set. Above
// the large-grid threshold each region is split into row bands, processed
// strictly top-to-bottom, so one surface call never touches more than a
// band's worth of cells. The layered write semantics make the chunked and
// unchunked paths produce identical final attributes.
func applyCellFormatting(s surface.Surface, cfg Config, set models.RegionSet, opts Options, res *models.OperationResult) {
	var concerns []concern
	if cfg.HAlign != "" || cfg.VAlign != "" {
		concerns = append(concerns, concern{"alignment", models.VisualAttributes{HAlign: cfg.HAlign, VAlign: cfg.VAlign}})
	}
	if cfg.Borders.Enabled {
		edges := cfg.Borders.Edges
		concerns = append(concerns, concern{"borders", models.VisualAttributes{Borders: &edges}})
	}
	if !cfg.Font.isZero() {
		concerns = append(concerns, concern{"font", models.VisualAttributes{
			FontFamily: cfg.Font.Family,
			FontSize:   cfg.Font.Size,
			FontColor:  cfg.Font.Color,
			Background: cfg.Font.Background,
		}})
	}
	if format := cfg.NumberFormat.FormatString(); format != "" {
		concerns = append(concerns, concern{"number-format", models.VisualAttributes{NumberFormat: format}})
	}
	if len(concerns) == 0 {
		return
	}

	chunked := set.TotalCells() > opts.LargeGridThreshold
	for _, c := range concerns {
		for _, region := range set {
			targets := []models.Region{region}
			if chunked {
				targets = rowBands(region, opts.ChunkRows)
			}
			for i, band := range targets {
				if err := s.WriteVisualAttributes(band, bandAttrs(c.attrs, i, len(targets))); err != nil {
					res.AddError(stageErr(c.name, err))
				}
			}
		}
	}
}

// bandAttrs adjusts border edges for one band out of n, so a chunked write
// leaves the same edges as a single unchunked one: the region's top and
// bottom borders land only on the first and last band, and band seams draw
// exactly when inner horizontal borders are requested.
func bandAttrs(attrs models.VisualAttributes, band, n int) models.VisualAttributes {
	if attrs.Borders == nil || n == 1 {
		return attrs
	}
	edges := *attrs.Borders
	if band > 0 {
		edges.Top = edges.InnerHorizontal
	}
	if band < n-1 {
		edges.Bottom = edges.InnerHorizontal
	}
	attrs.Borders = &edges
	return attrs
}

// rowBands partitions a region into bands of at most maxRows rows, in
// ascending row order.
func rowBands(r models.Region, maxRows int) []models.Region {
	if r.Height <= maxRows {
		return []models.Region{r}
	}
	var bands []models.Region
	for top := r.Top; top <= r.Bottom(); top += maxRows {
		height := maxRows
		if top+height-1 > r.Bottom() {
			height = r.Bottom() - top + 1
		}
		bands = append(bands, models.Region{Top: top, Left: r.Left, Height: height, Width: r.Width})
	}
	return bands
}

func panicErr(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
