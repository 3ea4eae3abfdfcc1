// Package taskloop implements the autonomous task-execution loop for agent
// identities.
//
// An agent receives a natural-language task, decides on one action per
// turn (run an automation, delegate to a peer agent, or declare
// completion), observes the outcome, and iterates until done or a safety
// bound is hit. The loop is deliberately defensive about model output:
// replies are decoded into a closed action set with an explicit
// unrecognized arm, delegation is bounded by an explicit depth counter
// passed by value on every hop, and a reply that is not structured at all
// ends the task with that text as its summary rather than as an error.
//
// # Architecture
//
//   - Orchestrator: owns ExecuteTask — transcript seeding, the bounded
//     iteration loop, dispatch, and terminal result mapping.
//   - ParseAction: total decoder from raw model text to a TaskAction.
//   - BuildSystemPrompt: renders automations, peers (only while the
//     delegation budget allows), and the legal action vocabulary.
//   - Directory: the identity store boundary, with an in-memory
//     implementation.
//   - EventEmitter: typed event stream for host application integration.
//
// # Quick Start
//
//	cfg := taskloop.DefaultConfig()
//	runner := automation.NewRunner(catalog, engine, cfg.ExecutionTimeout, nil)
//	orch := taskloop.New(cfg, directory, catalog, runner)
//
//	result := orch.ExecuteTask(ctx, "agent-1", "Run wf-1 and summarize", 0)
//	fmt.Println(result.Status, result.Summary)
package taskloop
