package taskloop

import (
	"fmt"
	"strings"
)

// DefaultObservationLimit caps observation text entering the transcript.
const DefaultObservationLimit = 4000

// truncateObservation applies head/tail truncation with an explicit
// marker so the model knows content was removed from the middle.
func truncateObservation(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	half := maxChars / 2
	removed := len(s) - maxChars
	return s[:half] +
		fmt.Sprintf("\n[... %d characters omitted ...]\n", removed) +
		s[len(s)-half:]
}

// runSuccessObservation describes a successful automation run.
func runSuccessObservation(automationID, detail string) string {
	return fmt.Sprintf("Automation %q ran successfully. Result: %s",
		automationID, truncateObservation(detail, DefaultObservationLimit))
}

// runFailedObservation describes a run the engine reported as failed.
func runFailedObservation(automationID, detail string) string {
	return fmt.Sprintf("Automation %q run failed: %s",
		automationID, truncateObservation(detail, DefaultObservationLimit))
}

// runErrorObservation describes a dispatch error (not found, unsupported,
// timeout) for an automation run.
func runErrorObservation(automationID string, err error) string {
	return fmt.Sprintf("Automation %q could not be executed: %v", automationID, err)
}

// correctiveObservation tells the model its reply was not a usable action
// and restates the currently legal vocabulary.
func correctiveObservation(legal []ActionKind) string {
	return fmt.Sprintf("Your reply was not a valid action. Reply with a single JSON object "+
		"whose \"action\" field is one of: %s. Do not include any other text.", joinActions(legal))
}

// unknownPeerObservation reports a failed peer lookup with the names that
// would have resolved.
func unknownPeerObservation(name string, known []string) string {
	if len(known) == 0 {
		return fmt.Sprintf("No peer agent named %q exists. There are no peer agents available; "+
			"do not delegate again.", name)
	}
	return fmt.Sprintf("No peer agent named %q exists. Known peer agents: %s.",
		name, strings.Join(known, ", "))
}

// delegationObservation summarizes a peer agent's task result.
func delegationObservation(peerName string, succeeded bool, summary string) string {
	outcome := "completed"
	if !succeeded {
		outcome = "failed"
	}
	return fmt.Sprintf("Peer agent %q %s the delegated task. Summary: %s",
		peerName, outcome, truncateObservation(summary, DefaultObservationLimit))
}

// repeatNotice nudges the model off a repeating action pattern. Appended to
// the observation for the repeated action, never as its own transcript
// entry, so turn-taking stays strict.
func repeatNotice(count int) string {
	return fmt.Sprintf("\n\nNote: you have requested this exact action %d times in a row. "+
		"Try a different approach or declare completion.", count)
}
