package taskloop

// TaskStatus is the terminal status of an ExecuteTask invocation.
type TaskStatus string

const (
	StatusCompleted TaskStatus = "completed"
	StatusError     TaskStatus = "error"
)

// StepOutcome records how a dispatched action ended.
type StepOutcome string

const (
	OutcomeSuccess StepOutcome = "success"
	OutcomeFailed  StepOutcome = "failed"
	OutcomeError   StepOutcome = "error"
)

// TaskStep is the log record of one dispatched action. Only run_automation
// and delegate actions that actually dispatched produce a step.
type TaskStep struct {
	Kind    ActionKind  `json:"kind"`
	Target  string      `json:"target"` // automation id or peer name
	Outcome StepOutcome `json:"outcome"`
}

// TaskResult is the terminal value of ExecuteTask. Status is error only
// for setup failures discovered before the loop starts; every in-loop
// failure is absorbed as an observation and the task still completes.
type TaskResult struct {
	Status  TaskStatus `json:"status"`
	Summary string     `json:"summary,omitempty"`
	Steps   []TaskStep `json:"steps"`
	Message string     `json:"message,omitempty"`
}
