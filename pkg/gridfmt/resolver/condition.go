package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

// conditionalCells evaluates the predicate against every grid cell, each
// match becoming its own 1x1 region.
func conditionalCells(cond *models.Condition, g models.Grid, s surface.Surface) (models.RegionSet, error) {
	if cond == nil {
		return nil, fmt.Errorf("%w: conditional needs a condition", ErrConfigIncomplete)
	}
	switch cond.Type {
	case models.CondGreaterThan, models.CondLessThan:
		if _, err := strconv.ParseFloat(cond.Value, 64); err != nil {
			return nil, fmt.Errorf("%w: %s needs a numeric value, got %q", ErrConfigIncomplete, cond.Type, cond.Value)
		}
	case models.CondContains, models.CondEquals, models.CondBlank, models.CondNotBlank, models.CondHasFormula:
	default:
		return nil, fmt.Errorf("%w: unknown condition type %q", ErrConfigIncomplete, cond.Type)
	}

	var set models.RegionSet
	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(); col++ {
			if matches(cond, g.Cell(row, col), row, col, s) {
				set = append(set, models.CellRegion(row, col))
			}
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no cells match condition %s", ErrInvalidTarget, cond.Type)
	}
	return set, nil
}

func matches(cond *models.Condition, value string, row, col int, s surface.Surface) bool {
	switch cond.Type {
	case models.CondContains:
		return value != "" && strings.Contains(value, cond.Value)
	case models.CondEquals:
		return looseEquals(value, cond.Value)
	case models.CondGreaterThan:
		n, ok := parseNumber(value)
		want, _ := strconv.ParseFloat(cond.Value, 64)
		return ok && n > want
	case models.CondLessThan:
		n, ok := parseNumber(value)
		want, _ := strconv.ParseFloat(cond.Value, 64)
		return ok && n < want
	case models.CondBlank:
		return value == ""
	case models.CondNotBlank:
		return value != ""
	case models.CondHasFormula:
		return s.HasFormula(row, col)
	}
	return false
}

// looseEquals compares numerically when both operands parse as numbers, so
// "100" matches 100 regardless of how the cell value was stored. Non-numeric
// operands fall back to exact string comparison.
func looseEquals(a, b string) bool {
	na, aok := parseNumber(a)
	nb, bok := parseNumber(b)
	if aok && bok {
		return na == nb
	}
	return a == b
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}
