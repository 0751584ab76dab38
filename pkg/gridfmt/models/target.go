package models

// TargetKind selects the strategy used to resolve a formatting target into
// concrete regions.
type TargetKind string

const (
	// TargetEntireSheet covers the full grid extent.
	TargetEntireSheet TargetKind = "entire-sheet"
	// TargetSelection uses the caller's current selection.
	TargetSelection TargetKind = "selected-range"
	// TargetCustomRange parses an A1-style address supplied in Target.Address.
	TargetCustomRange TargetKind = "custom-range"
	// TargetDataRange is the minimal bounding box of all non-empty cells.
	TargetDataRange TargetKind = "data-range"
	// TargetNamedRange looks up Target.Name among registered named ranges.
	TargetNamedRange TargetKind = "named-range"
	// TargetDetectTable grows a table boundary from the selection anchor.
	TargetDetectTable TargetKind = "detect-table"
	// TargetFilteredRows covers the visible rows of the active filter.
	TargetFilteredRows TargetKind = "filtered-rows"
	// TargetConditional covers every cell matching Target.Condition.
	TargetConditional TargetKind = "conditional"
	// TargetCurrentColumn covers the full height at the selection's column.
	TargetCurrentColumn TargetKind = "current-column"
	// TargetCurrentRow covers the full width at the selection's row.
	TargetCurrentRow TargetKind = "current-row"
	// TargetVisibleCells covers non-hidden rows crossed with non-hidden columns.
	TargetVisibleCells TargetKind = "visible-cells"
)

// Target is a declarative description of which part of a grid an operation
// applies to. Kind selects the strategy; the remaining fields carry only the
// parameters the chosen strategy needs.
type Target struct {
	Kind TargetKind `json:"kind" yaml:"kind"`
	// Address is an A1-style range, required by custom-range.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// Name is a named-range identifier, required by named-range.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Condition is the cell predicate, required by conditional.
	Condition *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// ConditionType identifies a cell predicate operator.
type ConditionType string

const (
	CondContains    ConditionType = "contains"
	CondEquals      ConditionType = "equals"
	CondGreaterThan ConditionType = "greaterThan"
	CondLessThan    ConditionType = "lessThan"
	CondBlank       ConditionType = "blank"
	CondNotBlank    ConditionType = "notBlank"
	CondHasFormula  ConditionType = "hasFormula"
)

// Condition is a per-cell predicate for conditional targeting.
type Condition struct {
	Type ConditionType `json:"type" yaml:"type"`
	// Value is the comparison operand; unused by blank, notBlank and
	// hasFormula.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}
