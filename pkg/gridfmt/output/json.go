// Package output serializes formatting reports for the CLI.
package output

import (
	"encoding/json"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// ResultToJSON serializes an operation result, with an explicit summary line
// so a run without errors still reports one.
func ResultToJSON(r *models.OperationResult, pretty bool) ([]byte, error) {
	type report struct {
		models.OperationResult
		Summary string `json:"summary"`
	}
	return marshal(report{OperationResult: *r, Summary: r.Summary()}, pretty)
}

// PreviewToJSON serializes a dry-run target estimate.
func PreviewToJSON(p models.Preview, pretty bool) ([]byte, error) {
	return marshal(p, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
