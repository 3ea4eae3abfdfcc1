package taskloop

import "testing"

func TestParseActionRunAutomation(t *testing.T) {
	action := ParseAction(`{"action":"run_automation","automationId":"wf-1","rationale":"kick off the digest"}`)
	if action.Kind != ActionRunAutomation {
		t.Fatalf("expected run_automation, got %s", action.Kind)
	}
	if action.AutomationID != "wf-1" {
		t.Errorf("unexpected automation id %q", action.AutomationID)
	}
	if action.Rationale != "kick off the digest" {
		t.Errorf("unexpected rationale %q", action.Rationale)
	}
	if !action.Structured {
		t.Error("expected Structured = true")
	}
}

func TestParseActionDelegate(t *testing.T) {
	action := ParseAction(`{"action":"delegate","toAgent":"Bob","message":"help"}`)
	if action.Kind != ActionDelegate {
		t.Fatalf("expected delegate, got %s", action.Kind)
	}
	if action.PeerName != "Bob" || action.Message != "help" {
		t.Errorf("unexpected fields: %+v", action)
	}
}

func TestParseActionComplete(t *testing.T) {
	action := ParseAction(`{"action":"complete","summary":"all done"}`)
	if action.Kind != ActionComplete {
		t.Fatalf("expected complete, got %s", action.Kind)
	}
	if action.Summary != "all done" {
		t.Errorf("unexpected summary %q", action.Summary)
	}
}

func TestParseActionStripsFence(t *testing.T) {
	replies := []string{
		"```json\n{\"action\":\"complete\",\"summary\":\"done\"}\n```",
		"```\n{\"action\":\"complete\",\"summary\":\"done\"}\n```",
		"  ```json\n{\"action\":\"complete\",\"summary\":\"done\"}\n```  ",
	}
	for _, reply := range replies {
		action := ParseAction(reply)
		if action.Kind != ActionComplete {
			t.Errorf("reply %q: expected complete, got %s", reply, action.Kind)
		}
		if action.Summary != "done" {
			t.Errorf("reply %q: unexpected summary %q", reply, action.Summary)
		}
	}
}

func TestParseActionUnstructured(t *testing.T) {
	replies := []string{
		"I think the task is finished now.",
		"",
		"[1, 2, 3]",
		`"just a string"`,
		"null",
		"{broken json",
	}
	for _, reply := range replies {
		action := ParseAction(reply)
		if action.Kind != ActionUnrecognized {
			t.Errorf("reply %q: expected unrecognized, got %s", reply, action.Kind)
		}
		if action.Structured {
			t.Errorf("reply %q: expected Structured = false", reply)
		}
		if action.Raw != reply {
			t.Errorf("reply %q: raw text not preserved", reply)
		}
	}
}

func TestParseActionStructuredButUnknown(t *testing.T) {
	replies := []string{
		`{"action":"launch_missiles"}`,
		`{"foo":"bar"}`,
		`{"action":""}`,
		`{"action":"run_automation"}`,              // missing automationId
		`{"action":"delegate","message":"please"}`, // missing toAgent
		`{"action":42}`,                            // mistyped action field
	}
	for _, reply := range replies {
		action := ParseAction(reply)
		if action.Kind != ActionUnrecognized {
			t.Errorf("reply %q: expected unrecognized, got %s", reply, action.Kind)
		}
		if !action.Structured {
			t.Errorf("reply %q: expected Structured = true", reply)
		}
	}
}

func TestParseActionNeverPanics(t *testing.T) {
	inputs := []string{
		"``````",
		"```",
		"```json",
		"{}",
		"{\"action\": {\"nested\": true}}",
		"\x00\xff",
	}
	for _, input := range inputs {
		// Totality: every input maps to a value.
		action := ParseAction(input)
		if action.Kind == "" {
			t.Errorf("input %q: empty kind", input)
		}
	}
}

func TestParseActionCompleteWithEmptySummary(t *testing.T) {
	action := ParseAction(`{"action":"complete"}`)
	if action.Kind != ActionComplete {
		t.Fatalf("expected complete, got %s", action.Kind)
	}
	if action.Summary != "" {
		t.Errorf("expected empty summary, got %q", action.Summary)
	}
}
