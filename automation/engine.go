package automation

import "context"

// RunStatus is the engine-reported terminal status of a run.
type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunError   RunStatus = "error"
)

// Run is a submission to the execution engine.
type Run struct {
	AutomationID   string         `json:"automation_id"`
	EntryPointKind EntryPointKind `json:"entry_point_kind"`
	SeedInput      map[string]any `json:"seed_input"`
	TriggeredBy    string         `json:"triggered_by"` // agent id
}

// RunResult is the engine's report for a finished run. Error carries the
// result-level error message when the run produced one even under a
// non-error status.
type RunResult struct {
	Status RunStatus      `json:"status"`
	Error  string         `json:"error,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Engine is the external execution engine boundary. AwaitResult blocks
// until the run finishes; the engine guarantees no timeout of its own, so
// callers must impose one. Both methods must tolerate concurrent
// independent runs.
type Engine interface {
	Submit(ctx context.Context, run Run) (runID string, err error)
	AwaitResult(ctx context.Context, runID string) (*RunResult, error)
}
