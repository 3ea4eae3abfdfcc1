package automation

import (
	"fmt"
	"time"
)

// NotFoundError indicates the automation does not exist or the agent lacks
// execute rights on it.
type NotFoundError struct {
	AutomationID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("automation %q not found", e.AutomationID)
}

// UnsupportedError indicates the automation has no enabled entry point of a
// supported kind.
type UnsupportedError struct {
	AutomationID string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("automation %q has no enabled entry point an agent can trigger", e.AutomationID)
}

// TimeoutError indicates the engine did not report a result within the
// runner's bound. The run itself may still be executing engine-side.
type TimeoutError struct {
	AutomationID string
	RunID        string
	Timeout      time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("automation %q run %s timed out after %s", e.AutomationID, e.RunID, e.Timeout)
}

// SubmitError wraps an engine failure at submission time.
type SubmitError struct {
	AutomationID string
	Cause        error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("automation %q could not be submitted: %v", e.AutomationID, e.Cause)
}

func (e *SubmitError) Unwrap() error {
	return e.Cause
}
