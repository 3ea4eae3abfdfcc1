package taskloop

import (
	"encoding/json"
	"strings"
)

// ActionKind discriminates the actions a model reply can request.
type ActionKind string

const (
	ActionRunAutomation ActionKind = "run_automation"
	ActionDelegate      ActionKind = "delegate"
	ActionComplete      ActionKind = "complete"
	ActionUnrecognized  ActionKind = "unrecognized"
)

// TaskAction is the decoded form of one model reply.
//
// Structured reports whether the reply was a JSON object at all. An
// unrecognized action with Structured=false means the model abandoned the
// format entirely; the orchestrator then treats the raw text as the final
// summary instead of correcting the model.
type TaskAction struct {
	Kind ActionKind

	AutomationID string // run_automation
	Rationale    string // run_automation, optional
	PeerName     string // delegate
	Message      string // delegate
	Summary      string // complete

	Raw        string
	Structured bool
}

// actionPayload is the wire shape of a structured reply.
type actionPayload struct {
	Action       string `json:"action"`
	AutomationID string `json:"automationId"`
	Rationale    string `json:"rationale"`
	ToAgent      string `json:"toAgent"`
	Message      string `json:"message"`
	Summary      string `json:"summary"`
}

// ParseAction decodes raw model text into a TaskAction. It never fails:
// every input maps to one of the four kinds. A single fenced-code wrapper
// around the reply is stripped before decoding.
func ParseAction(text string) TaskAction {
	body := stripFence(strings.TrimSpace(text))

	// Require a JSON object; anything else is an unstructured reply.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil || obj == nil {
		return TaskAction{Kind: ActionUnrecognized, Raw: text}
	}

	var payload actionPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		// An object with mistyped fields (e.g. numeric summary) is still a
		// structured attempt; correct the model rather than bailing out.
		return TaskAction{Kind: ActionUnrecognized, Raw: text, Structured: true}
	}

	switch payload.Action {
	case string(ActionRunAutomation):
		if payload.AutomationID == "" {
			return TaskAction{Kind: ActionUnrecognized, Raw: text, Structured: true}
		}
		return TaskAction{
			Kind:         ActionRunAutomation,
			AutomationID: payload.AutomationID,
			Rationale:    payload.Rationale,
			Raw:          text,
			Structured:   true,
		}
	case string(ActionDelegate):
		if payload.ToAgent == "" {
			return TaskAction{Kind: ActionUnrecognized, Raw: text, Structured: true}
		}
		return TaskAction{
			Kind:       ActionDelegate,
			PeerName:   payload.ToAgent,
			Message:    payload.Message,
			Raw:        text,
			Structured: true,
		}
	case string(ActionComplete):
		return TaskAction{
			Kind:       ActionComplete,
			Summary:    payload.Summary,
			Raw:        text,
			Structured: true,
		}
	default:
		return TaskAction{Kind: ActionUnrecognized, Raw: text, Structured: true}
	}
}

// stripFence removes one leading/trailing fenced-code wrapper (``` or
// ```json) if the whole body is wrapped in it.
func stripFence(body string) string {
	if !strings.HasPrefix(body, "```") {
		return body
	}
	rest := body[3:]
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(rest[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			rest = rest[idx+1:]
		}
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
