package taskloop

import (
	"github.com/martinemde/flowpilot/completion"
)

// Transcript is the append-only message sequence for one task run: one
// system message, then strictly alternating human observations and model
// replies. It is never truncated or mutated mid-run.
type Transcript struct {
	msgs []completion.Message
}

// NewTranscript seeds a transcript with the system instruction and the
// initial task prompt.
func NewTranscript(systemInstruction, prompt string) *Transcript {
	return &Transcript{msgs: []completion.Message{
		completion.SystemMessage(systemInstruction),
		completion.HumanMessage(prompt),
	}}
}

// AppendModel records a model reply.
func (t *Transcript) AppendModel(text string) {
	t.msgs = append(t.msgs, completion.ModelMessage(text))
}

// AppendObservation records a human-role observation closing the loop back
// to the model.
func (t *Transcript) AppendObservation(text string) {
	t.msgs = append(t.msgs, completion.HumanMessage(text))
}

// SystemInstruction returns the system message content.
func (t *Transcript) SystemInstruction() string {
	return t.msgs[0].Content
}

// Turns returns the conversation entries after the system message. The
// returned slice is shared; callers must not mutate it.
func (t *Transcript) Turns() []completion.Message {
	return t.msgs[1:]
}

// Messages returns the full sequence including the system message.
func (t *Transcript) Messages() []completion.Message {
	out := make([]completion.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len returns the number of entries including the system message.
func (t *Transcript) Len() int {
	return len(t.msgs)
}
