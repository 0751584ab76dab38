package gridfmt

import (
	"fmt"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/resolver"
)

// ErrInvalidTarget is re-exported from the resolver: the target cannot
// produce a region. During a run it is fatal; no formatting is applied.
var ErrInvalidTarget = resolver.ErrInvalidTarget

// ErrConfigIncomplete is re-exported from the resolver: a required target
// parameter is missing.
var ErrConfigIncomplete = resolver.ErrConfigIncomplete

// StageError records a formatting sub-operation failure. Stage errors are
// caught at the stage boundary and appended to the run's error list; they
// never abort later stages.
type StageError struct {
	// Stage is the originating stage name, e.g. "borders" or "prune".
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stageErr renders a stage failure for the shared error list.
func stageErr(stage string, err error) string {
	return (&StageError{Stage: stage, Err: err}).Error()
}
