package completion

// Role identifies who produced a message in a transcript.
type Role string

const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleModel  Role = "model"
)

// Message is one entry in a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system-role Message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// HumanMessage creates a human-role Message.
func HumanMessage(text string) Message {
	return Message{Role: RoleHuman, Content: text}
}

// ModelMessage creates a model-role Message.
func ModelMessage(text string) Message {
	return Message{Role: RoleModel, Content: text}
}

// Request is the input to Complete. Transcript order is preserved as-is;
// the system instruction is carried separately from the turn history.
type Request struct {
	Model             string    `json:"model"`
	SystemInstruction string    `json:"system_instruction,omitempty"`
	Transcript        []Message `json:"transcript"`
	Temperature       *float64  `json:"temperature,omitempty"`
	MaxTokens         *int      `json:"max_tokens,omitempty"`
	Provider          string    `json:"provider,omitempty"`
}

// Usage tracks approximate token consumption for a completion call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is the output of Complete.
type Response struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
	Text     string `json:"text"`
	Usage    Usage  `json:"usage"`
}
