package taskloop

import "testing"

func TestEventEmitterDropsWhenFull(t *testing.T) {
	e := NewEventEmitter(1)
	e.Emit(TaskEvent{Kind: EventTaskStart})
	// Buffer is full; this must return without blocking.
	e.Emit(TaskEvent{Kind: EventModelReply})

	got := <-e.Events()
	if got.Kind != EventTaskStart {
		t.Errorf("expected the first event, got %s", got.Kind)
	}
	select {
	case extra := <-e.Events():
		t.Errorf("expected the second event dropped, got %s", extra.Kind)
	default:
	}
}

func TestEventEmitterCloseIsIdempotent(t *testing.T) {
	e := NewEventEmitter(4)
	e.Close()
	e.Close()
	// Emitting after close is a no-op, not a panic.
	e.Emit(TaskEvent{Kind: EventWarning})

	if _, ok := <-e.Events(); ok {
		t.Error("expected a closed, drained channel")
	}
}

func TestEventEmitterStampsTimestamp(t *testing.T) {
	e := NewEventEmitter(1)
	e.Emit(TaskEvent{Kind: EventObservation})
	got := <-e.Events()
	if got.Timestamp.IsZero() {
		t.Error("expected emission timestamp set")
	}
}
