package automation

import (
	"fmt"
	"time"
)

// conversationalInput is the fixed opener handed to chat-triggered
// automations; agent runs have no live chat message to forward.
const conversationalInput = "An automated agent has started this conversation."

// supportedKinds lists the entry-point kinds an agent run can seed.
var supportedKinds = map[EntryPointKind]bool{
	KindManual:         true,
	KindInboundRequest: true,
	KindConversational: true,
	KindFormSubmission: true,
	KindScheduled:      true,
}

// Supported reports whether an agent can seed the given entry-point kind.
func Supported(kind EntryPointKind) bool {
	return supportedKinds[kind]
}

// SeedInput fabricates the initial run data a live trigger of the given
// kind would have produced. The mapping is deterministic; message is only
// used by the manual kind and omitted there when empty.
func SeedInput(kind EntryPointKind, message string, now time.Time) map[string]any {
	ts := now.UnixMilli()
	switch kind {
	case KindManual:
		seed := map[string]any{
			"triggeredByAgent": true,
			"timestamp":        ts,
		}
		if message != "" {
			seed["message"] = message
		}
		return seed
	case KindInboundRequest:
		return map[string]any{
			"headers": map[string]any{},
			"query":   map[string]any{},
			"body":    map[string]any{},
		}
	case KindConversational:
		return map[string]any{
			"sessionId": fmt.Sprintf("agent-%d", ts),
			"action":    "sendMessage",
			"chatInput": conversationalInput,
		}
	case KindFormSubmission:
		return map[string]any{
			"submittedAt": ts,
			"formMode":    "agent",
		}
	case KindScheduled:
		return map[string]any{
			"timestamp":        ts,
			"triggeredByAgent": true,
		}
	default:
		return nil
	}
}
