package taskloop

import (
	"fmt"
	"strings"

	"github.com/martinemde/flowpilot/automation"
)

// LegalActions returns the action vocabulary available at the given depth.
// Delegation is only legal while depth is under the budget; the prompt and
// the corrective observations both draw from this list so the model is
// never told about an action it cannot use.
func LegalActions(depth, maxDelegationDepth int) []ActionKind {
	if depth < maxDelegationDepth {
		return []ActionKind{ActionRunAutomation, ActionDelegate, ActionComplete}
	}
	return []ActionKind{ActionRunAutomation, ActionComplete}
}

// BuildSystemPrompt renders the system instruction for one task run. It is
// a pure function of its inputs; peers are enumerated only while the
// delegation budget allows.
func BuildSystemPrompt(agentName string, automations []automation.Summary, peers []AgentIdentity, depth, maxDelegationDepth int) string {
	canDelegate := depth < maxDelegationDepth

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s, an autonomous agent. You work on the task one step at a time: "+
		"each reply must be exactly one action, expressed as a single JSON object with no surrounding prose.\n", agentName)

	sb.WriteString("\n## Available automations\n")
	if len(automations) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, a := range automations {
		state := "inactive"
		if a.Active {
			state = "active"
		}
		fmt.Fprintf(&sb, "- %s (%s) [%s]\n", a.ID, a.Name, state)
	}

	if canDelegate {
		sb.WriteString("\n## Peer agents you may delegate to\n")
		if len(peers) == 0 {
			sb.WriteString("(none)\n")
		}
		for _, p := range peers {
			fmt.Fprintf(&sb, "- %s\n", p.Name)
		}
	}

	sb.WriteString("\n## Actions\n")
	sb.WriteString(`To run an automation:
{"action": "run_automation", "automationId": "<id>", "rationale": "<why, optional>"}
`)
	if canDelegate {
		sb.WriteString(`To delegate a sub-task to a peer agent:
{"action": "delegate", "toAgent": "<peer name>", "message": "<what to do>"}
`)
	}
	sb.WriteString(`When the task is done:
{"action": "complete", "summary": "<what happened>"}
`)

	fmt.Fprintf(&sb, "\nThe only valid values for \"action\" are: %s.\n", joinActions(LegalActions(depth, maxDelegationDepth)))
	sb.WriteString("After each action you will receive an observation describing its outcome. " +
		"Use it to decide your next action. Declare completion as soon as the task is done.")
	return sb.String()
}

func joinActions(kinds []ActionKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
