package gridfmt

import (
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/resolver"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/scan"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

// PreviewTarget resolves the target and returns a size estimate without
// writing anything to the surface.
func PreviewTarget(s surface.Surface, target models.Target) (models.Preview, error) {
	grid, err := surface.Snapshot(s)
	if err != nil {
		return models.Preview{}, err
	}
	set, err := resolver.Resolve(target, grid, s)
	if err != nil {
		return models.Preview{}, err
	}
	preview := models.Preview{
		RegionCount: len(set),
		TotalCells:  set.TotalCells(),
	}
	for _, r := range set {
		preview.NonEmptyCells += scan.NonEmptyCells(grid, r)
	}
	return preview, nil
}
