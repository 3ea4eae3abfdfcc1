package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultExecutionTimeout bounds how long a run is awaited.
const DefaultExecutionTimeout = 120 * time.Second

// RunReport summarizes a finished automation run for the caller.
type RunReport struct {
	RunID          string
	AutomationName string
	EntryPointKind EntryPointKind
	Succeeded      bool
	Detail         string
}

// Runner resolves automations, seeds runs, and awaits results under a
// hard timeout. It holds no per-run state; one Runner serves concurrent
// independent tasks.
type Runner struct {
	catalog Catalog
	engine  Engine
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewRunner creates a Runner. A non-positive timeout falls back to
// DefaultExecutionTimeout; a nil logger falls back to slog.Default().
func NewRunner(catalog Catalog, engine Engine, timeout time.Duration, logger *slog.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultExecutionTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		catalog: catalog,
		engine:  engine,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes an automation on behalf of an agent: resolve, select the
// first enabled entry point of a supported kind in declaration order, seed,
// submit, await. The returned error is one of the typed errors in this
// package (or a context error); a nil error with Succeeded=false means the
// engine reported a failed run.
func (r *Runner) Run(ctx context.Context, agentID, automationID, message string) (*RunReport, error) {
	a, err := r.catalog.Find(ctx, agentID, automationID)
	if err != nil {
		return nil, err
	}

	entry, ok := selectEntryPoint(a)
	if !ok {
		return nil, &UnsupportedError{AutomationID: automationID}
	}

	run := Run{
		AutomationID:   a.ID,
		EntryPointKind: entry.Kind,
		SeedInput:      SeedInput(entry.Kind, message, r.now()),
		TriggeredBy:    agentID,
	}

	runID, err := r.engine.Submit(ctx, run)
	if err != nil {
		return nil, &SubmitError{AutomationID: automationID, Cause: err}
	}

	r.logger.Debug("automation run submitted",
		"automation", a.ID, "run", runID, "entry_point", entry.Kind, "agent", agentID)

	result, err := r.await(ctx, a, runID)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		RunID:          runID,
		AutomationName: a.Name,
		EntryPointKind: entry.Kind,
		Succeeded:      result.Status != RunError && result.Error == "",
	}
	if report.Succeeded {
		report.Detail = summarizeData(result.Data)
	} else if result.Error != "" {
		report.Detail = result.Error
	} else {
		report.Detail = fmt.Sprintf("engine reported status %q", result.Status)
	}
	return report, nil
}

// await races the engine's completion signal against the timeout. On
// timeout it stops waiting for this one run only; the engine may finish it
// later.
func (r *Runner) await(ctx context.Context, a *Automation, runID string) (*RunResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type awaited struct {
		result *RunResult
		err    error
	}
	done := make(chan awaited, 1)
	go func() {
		result, err := r.engine.AwaitResult(runCtx, runID)
		done <- awaited{result, err}
	}()

	select {
	case <-runCtx.Done():
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &TimeoutError{AutomationID: a.ID, RunID: runID, Timeout: r.timeout}
		}
		return nil, runCtx.Err()
	case out := <-done:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil, &TimeoutError{AutomationID: a.ID, RunID: runID, Timeout: r.timeout}
			}
			return nil, out.err
		}
		return out.result, nil
	}
}

// selectEntryPoint returns the first enabled entry point of a supported
// kind in declaration order. First match wins; later supported entry
// points on the same automation are deliberately ignored.
func selectEntryPoint(a *Automation) (EntryPoint, bool) {
	var selected EntryPoint
	found := false
	for _, ep := range a.EntryPoints {
		if !ep.Enabled || !Supported(ep.Kind) {
			continue
		}
		if !found {
			selected = ep
			found = true
			continue
		}
		slog.Debug("automation has additional triggerable entry points; first match wins",
			"automation", a.ID, "selected", selected.Kind, "ignored", ep.Kind)
	}
	return selected, found
}

// summarizeData renders the result payload for an observation. Keys are not
// sorted deterministically beyond fmt's map ordering, which sorts keys.
func summarizeData(data map[string]any) string {
	if len(data) == 0 {
		return "no result data"
	}
	return fmt.Sprintf("%v", data)
}
