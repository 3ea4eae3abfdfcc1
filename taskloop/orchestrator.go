package taskloop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/martinemde/flowpilot/automation"
	"github.com/martinemde/flowpilot/completion"
)

// CompletionClient is the completion-endpoint boundary.
type CompletionClient interface {
	Complete(ctx context.Context, req completion.Request) (*completion.Response, error)
}

// AutomationRunner is the execution-adapter boundary, satisfied by
// *automation.Runner.
type AutomationRunner interface {
	Run(ctx context.Context, agentID, automationID, message string) (*automation.RunReport, error)
}

// Orchestrator owns the task-execution loop. One Orchestrator serves
// concurrent independent tasks; it holds no per-task mutable state.
type Orchestrator struct {
	cfg       Config
	directory Directory
	catalog   automation.Catalog
	runner    AutomationRunner
	client    CompletionClient
	emitter   *EventEmitter
	logger    *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCompletionClient overrides the client built from Config. Passing a
// non-nil client also satisfies the credential precondition.
func WithCompletionClient(client CompletionClient) Option {
	return func(o *Orchestrator) {
		o.client = client
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// New creates an Orchestrator. When cfg carries an API key and no client is
// injected, a gollm-backed completion client is built for cfg.Provider.
// Missing credentials are not an error here; they surface as a setup
// failure on the first ExecuteTask call.
func New(cfg Config, directory Directory, catalog automation.Catalog, runner AutomationRunner, opts ...Option) *Orchestrator {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	if cfg.MaxDelegationDepth < 0 {
		cfg.MaxDelegationDepth = 0
	}

	o := &Orchestrator{
		cfg:       cfg,
		directory: directory,
		catalog:   catalog,
		runner:    runner,
		emitter:   NewEventEmitter(256),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.client == nil && cfg.APIKey != "" {
		adapter, err := completion.NewGollmAdapter(cfg.Provider, cfg.APIKey,
			completion.WithModel(cfg.Model),
			completion.WithMaxTokens(cfg.MaxTokens),
			completion.WithTemperature(cfg.Temperature),
		)
		if err != nil {
			o.logger.Warn("completion client unavailable", "provider", cfg.Provider, "error", err)
		} else {
			o.client = completion.NewClient(completion.WithProvider(adapter))
		}
	}

	return o
}

// Events returns the orchestrator's event channel. Events from delegated
// (nested) tasks are delivered on the same channel with their depth set.
func (o *Orchestrator) Events() <-chan TaskEvent {
	return o.emitter.Events()
}

// Close closes the event channel.
func (o *Orchestrator) Close() {
	o.emitter.Close()
}

// ExecuteTask runs one task to completion for the given agent. depth is
// the delegation hop count; callers start at 0 and every recursive hop
// passes depth+1. Setup failures (unknown agent, missing completion
// credential) return Status error before any completion call; everything
// that goes wrong inside the loop is fed back to the model as an
// observation and the task still ends completed.
func (o *Orchestrator) ExecuteTask(ctx context.Context, agentID, prompt string, depth int) TaskResult {
	taskID := uuid.New().String()

	agent, err := o.directory.FindAgentByID(ctx, agentID)
	if err != nil {
		return TaskResult{Status: StatusError, Message: fmt.Sprintf("agent lookup failed: %v", err)}
	}
	if agent == nil {
		return TaskResult{Status: StatusError, Message: fmt.Sprintf("agent %q not found", agentID)}
	}
	if o.client == nil {
		return TaskResult{Status: StatusError, Message: "no completion endpoint credential configured"}
	}

	automations, err := o.catalog.ListVisibleTo(ctx, agentID)
	if err != nil {
		o.logger.Warn("automation listing failed; continuing with none", "agent", agentID, "error", err)
		automations = nil
	}

	var peers []AgentIdentity
	if depth < o.cfg.MaxDelegationDepth {
		peers, err = o.directory.ListPeerAgents(ctx, agentID)
		if err != nil {
			o.logger.Warn("peer listing failed; continuing with none", "agent", agentID, "error", err)
			peers = nil
		}
	}

	transcript := NewTranscript(BuildSystemPrompt(agent.Name, automations, peers, depth, o.cfg.MaxDelegationDepth), prompt)
	o.emit(EventTaskStart, taskID, agentID, depth, map[string]any{"prompt": prompt})
	o.logger.Info("task started", "task", taskID, "agent", agentID, "depth", depth)

	steps := []TaskStep{}
	var signatures []string

	for iteration := 0; iteration < o.cfg.MaxIterations; iteration++ {
		resp, err := o.client.Complete(ctx, completion.Request{
			Model:             o.cfg.Model,
			SystemInstruction: transcript.SystemInstruction(),
			Transcript:        transcript.Turns(),
			Temperature:       &o.cfg.Temperature,
			MaxTokens:         &o.cfg.MaxTokens,
		})
		if err != nil {
			// The retry policy is already exhausted at this point. Status
			// stays completed: error is reserved for setup failures, and
			// the steps gathered so far are still useful to the caller.
			o.emit(EventError, taskID, agentID, depth, map[string]any{"error": err.Error()})
			o.logger.Error("completion call failed", "task", taskID, "error", err)
			return o.finish(taskID, agentID, depth, TaskResult{
				Status:  StatusCompleted,
				Summary: fmt.Sprintf("task aborted: completion request failed: %v", err),
				Steps:   steps,
			})
		}

		reply := resp.Text
		transcript.AppendModel(reply)
		o.emit(EventModelReply, taskID, agentID, depth, map[string]any{"text": reply})

		action := ParseAction(reply)

		switch action.Kind {
		case ActionComplete:
			return o.finish(taskID, agentID, depth, TaskResult{
				Status:  StatusCompleted,
				Summary: action.Summary,
				Steps:   steps,
			})

		case ActionUnrecognized:
			if !action.Structured {
				// The model abandoned the action format entirely. Treat
				// the reply as the final summary so a format lapse still
				// yields a usable result.
				return o.finish(taskID, agentID, depth, TaskResult{
					Status:  StatusCompleted,
					Summary: strings.TrimSpace(action.Raw),
					Steps:   steps,
				})
			}
			transcript.AppendObservation(correctiveObservation(LegalActions(depth, o.cfg.MaxDelegationDepth)))

		case ActionRunAutomation:
			step := TaskStep{Kind: ActionRunAutomation, Target: action.AutomationID}
			o.emit(EventActionDispatch, taskID, agentID, depth, map[string]any{
				"kind": string(ActionRunAutomation), "target": action.AutomationID,
			})

			message := action.Rationale
			if message == "" {
				message = prompt
			}

			var obs string
			report, err := o.runner.Run(ctx, agentID, action.AutomationID, message)
			if err != nil {
				step.Outcome = OutcomeError
				obs = runErrorObservation(action.AutomationID, err)
				o.logger.Warn("automation dispatch failed", "task", taskID, "automation", action.AutomationID, "error", err)
			} else if report.Succeeded {
				step.Outcome = OutcomeSuccess
				obs = runSuccessObservation(action.AutomationID, report.Detail)
			} else {
				step.Outcome = OutcomeFailed
				obs = runFailedObservation(action.AutomationID, report.Detail)
			}
			steps = append(steps, step)

			signatures = append(signatures, actionSignature(ActionRunAutomation, action.AutomationID, action.Rationale))
			if n := repeatedTail(signatures); n >= repeatWindow {
				obs += repeatNotice(n)
			}
			transcript.AppendObservation(obs)
			o.emit(EventObservation, taskID, agentID, depth, map[string]any{"text": obs, "outcome": string(step.Outcome)})

		case ActionDelegate:
			if depth >= o.cfg.MaxDelegationDepth {
				// Over budget: delegate was never advertised at this
				// depth. Correct, don't dispatch.
				transcript.AppendObservation(correctiveObservation(LegalActions(depth, o.cfg.MaxDelegationDepth)))
				continue
			}

			peer, known, err := o.findPeer(ctx, agentID, action.PeerName)
			if err != nil {
				o.logger.Warn("peer lookup failed", "task", taskID, "peer", action.PeerName, "error", err)
				transcript.AppendObservation(unknownPeerObservation(action.PeerName, nil))
				continue
			}
			if peer == nil {
				transcript.AppendObservation(unknownPeerObservation(action.PeerName, known))
				continue
			}

			step := TaskStep{Kind: ActionDelegate, Target: peer.Name}
			o.emit(EventDelegation, taskID, agentID, depth, map[string]any{
				"peer": peer.Name, "message": action.Message,
			})

			sub := o.ExecuteTask(ctx, peer.ID, action.Message, depth+1)
			if sub.Status == StatusCompleted {
				step.Outcome = OutcomeSuccess
			} else {
				step.Outcome = OutcomeFailed
			}
			steps = append(steps, step)

			summary := sub.Summary
			if sub.Status == StatusError {
				summary = sub.Message
			}
			obs := delegationObservation(peer.Name, sub.Status == StatusCompleted, summary)

			signatures = append(signatures, actionSignature(ActionDelegate, peer.Name, action.Message))
			if n := repeatedTail(signatures); n >= repeatWindow {
				obs += repeatNotice(n)
			}
			transcript.AppendObservation(obs)
			o.emit(EventObservation, taskID, agentID, depth, map[string]any{"text": obs, "outcome": string(step.Outcome)})
		}
	}

	o.emit(EventIterationLimit, taskID, agentID, depth, map[string]any{"iterations": o.cfg.MaxIterations})
	return o.finish(taskID, agentID, depth, TaskResult{
		Status:  StatusCompleted,
		Summary: fmt.Sprintf("reached maximum iterations (%d) without completing the task", o.cfg.MaxIterations),
		Steps:   steps,
	})
}

func (o *Orchestrator) finish(taskID, agentID string, depth int, result TaskResult) TaskResult {
	o.emit(EventTaskEnd, taskID, agentID, depth, map[string]any{
		"status": string(result.Status), "steps": len(result.Steps),
	})
	o.logger.Info("task finished", "task", taskID, "agent", agentID, "depth", depth,
		"status", result.Status, "steps", len(result.Steps))
	return result
}

func (o *Orchestrator) emit(kind EventKind, taskID, agentID string, depth int, data map[string]any) {
	o.emitter.Emit(TaskEvent{Kind: kind, TaskID: taskID, AgentID: agentID, Depth: depth, Data: data})
}
