// Package history records past analysis runs.
//
// Each saved run captures the inputs and headline numbers of one
// comparison so earlier results can be listed and reopened without
// re-parsing. The Store interface supports Save/Get/List/Delete; the
// file-backed implementation keeps one JSON file per run in a config
// directory.
package history

import (
	"context"
	"time"

	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
)

// Run is one recorded analysis.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RefText  string `json:"reference"`
	CompText string `json:"compared"`

	RefDepth  int `json:"ref_depth"`
	CompDepth int `json:"comp_depth"`
	RefNodes  int `json:"ref_nodes"`
	CompNodes int `json:"comp_nodes"`
	Score     int `json:"score"`
	Delta     int `json:"delta"`
}

// FromResult builds a Run record from a pipeline result.
func FromResult(result *pipeline.Result) *Run {
	return &Run{
		ID:        result.RunID,
		CreatedAt: time.Now().UTC(),
		RefText:   result.Ref.Text,
		CompText:  result.Comp.Text,
		RefDepth:  result.Ref.Depth,
		CompDepth: result.Comp.Depth,
		RefNodes:  result.Ref.Nodes,
		CompNodes: result.Comp.Nodes,
		Score:     result.Score,
		Delta:     result.Delta,
	}
}

// Store persists analysis runs.
type Store interface {
	// Save records a run, overwriting any record with the same ID.
	Save(ctx context.Context, run *Run) error

	// Get returns a run by ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns all recorded runs, newest first.
	List(ctx context.Context) ([]*Run, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error
}
