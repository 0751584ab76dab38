package models

import "strconv"

// OperationResult accumulates the outcome of one formatting run. It is
// threaded through every pipeline stage and never reset mid-run; the final
// value is the caller-visible report.
type OperationResult struct {
	// Errors lists recoverable stage failures in stage-and-chunk execution
	// order. Duplicate-looking messages are preserved: they may originate
	// from different chunks.
	Errors []string `json:"errors"`
	// DeletedRows counts rows removed by empty-line pruning.
	DeletedRows int `json:"deleted_rows"`
	// DeletedCols counts columns removed by empty-line pruning.
	DeletedCols int `json:"deleted_cols"`
	// BandingMessage reports the banding outcome ("applied" or skipped).
	BandingMessage string `json:"banding_message,omitempty"`
}

// AddError appends a recoverable error message.
func (r *OperationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Summary returns a one-line human-readable report of the error state.
func (r *OperationResult) Summary() string {
	if len(r.Errors) == 0 {
		return "no errors"
	}
	if len(r.Errors) == 1 {
		return "1 error"
	}
	return strconv.Itoa(len(r.Errors)) + " errors"
}

// Preview is a dry-run size estimate of a target resolution, produced
// without writing to the surface.
type Preview struct {
	// RegionCount is the number of regions the target resolves to.
	RegionCount int `json:"region_count"`
	// TotalCells is the sum of height*width over all regions.
	TotalCells int `json:"total_cells"`
	// NonEmptyCells counts the non-empty cells inside the resolved regions.
	NonEmptyCells int `json:"non_empty_cells"`
}
