package gridfmt

import (
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

// Banding outcome messages reported through OperationResult.BandingMessage.
const (
	bandingAppliedMsg = "banding applied"
	bandingSkippedMsg = "banding already applied, skipped"
	bandingFailedMsg  = "banding failed"
)

// bandingGuard keeps repeated runs from stacking decorative banding. The
// check is sheet-level, not per-region: one banding anywhere on the sheet
// blocks all future automatic banding there, so re-running the formatter
// cannot double-apply stripes.
type bandingGuard struct {
	s surface.Surface
}

func (g bandingGuard) alreadyApplied() bool {
	return len(g.s.Bandings()) > 0
}

// applyBanding decorates each target region, unless the guard reports the
// sheet is already banded, in which case nothing is written.
func applyBanding(s surface.Surface, cfg Config, set models.RegionSet, res *models.OperationResult) {
	if (bandingGuard{s}).alreadyApplied() {
		res.BandingMessage = bandingSkippedMsg
		return
	}
	theme := cfg.Banding.Theme
	if theme == "" {
		theme = ThemeGrey
	}
	applied := false
	for _, r := range set {
		if err := s.ApplyBanding(r, string(theme), true, false); err != nil {
			res.AddError(stageErr("banding", err))
			continue
		}
		applied = true
	}
	if applied {
		res.BandingMessage = bandingAppliedMsg
	} else {
		res.BandingMessage = bandingFailedMsg
	}
}
