package taskloop

import (
	"strings"
	"testing"

	"github.com/martinemde/flowpilot/automation"
)

func TestLegalActionsUnderBudget(t *testing.T) {
	legal := LegalActions(0, 2)
	if len(legal) != 3 {
		t.Fatalf("expected 3 legal actions, got %v", legal)
	}
	found := false
	for _, k := range legal {
		if k == ActionDelegate {
			found = true
		}
	}
	if !found {
		t.Error("expected delegate in the legal vocabulary under budget")
	}
}

func TestLegalActionsAtBudget(t *testing.T) {
	for _, depth := range []int{2, 3} {
		legal := LegalActions(depth, 2)
		for _, k := range legal {
			if k == ActionDelegate {
				t.Errorf("depth %d: delegate must not be legal at or over budget", depth)
			}
		}
		if len(legal) != 2 {
			t.Errorf("depth %d: expected 2 legal actions, got %v", depth, legal)
		}
	}
}

func TestBuildSystemPromptListsAutomations(t *testing.T) {
	automations := []automation.Summary{
		{ID: "wf-1", Name: "Daily digest", Active: true},
		{ID: "wf-2", Name: "Cleanup", Active: false},
	}
	prompt := BuildSystemPrompt("Alice", automations, nil, 0, 2)

	if !strings.Contains(prompt, "wf-1 (Daily digest) [active]") {
		t.Error("expected active automation line")
	}
	if !strings.Contains(prompt, "wf-2 (Cleanup) [inactive]") {
		t.Error("expected inactive automation line")
	}
	if !strings.Contains(prompt, "You are Alice") {
		t.Error("expected agent name in prompt")
	}
}

func TestBuildSystemPromptPeersOnlyUnderBudget(t *testing.T) {
	peers := []AgentIdentity{{ID: "a2", Name: "Bob", Kind: IdentityAgent}}

	under := BuildSystemPrompt("Alice", nil, peers, 0, 2)
	if !strings.Contains(under, "Bob") {
		t.Error("expected peer listed while under the delegation budget")
	}
	if !strings.Contains(under, `"action": "delegate"`) {
		t.Error("expected delegate action example while under budget")
	}

	at := BuildSystemPrompt("Alice", nil, peers, 2, 2)
	if strings.Contains(at, "Bob") {
		t.Error("peer must not be mentioned at the delegation budget")
	}
	if strings.Contains(at, "delegate") {
		t.Error("delegate must not be mentioned at the delegation budget")
	}
}

func TestBuildSystemPromptLegalActionLine(t *testing.T) {
	under := BuildSystemPrompt("Alice", nil, nil, 0, 2)
	if !strings.Contains(under, "run_automation, delegate, complete") {
		t.Error("expected full vocabulary line under budget")
	}

	at := BuildSystemPrompt("Alice", nil, nil, 2, 2)
	if !strings.Contains(at, "run_automation, complete") {
		t.Error("expected reduced vocabulary line at budget")
	}
}

func TestBuildSystemPromptEmptySections(t *testing.T) {
	prompt := BuildSystemPrompt("Alice", nil, nil, 0, 2)
	if !strings.Contains(prompt, "(none)") {
		t.Error("expected explicit (none) markers for empty sections")
	}
}
