package taskloop

import (
	"sync"
	"time"
)

// EventKind identifies the type of task event.
type EventKind string

const (
	EventTaskStart      EventKind = "task_start"
	EventModelReply     EventKind = "model_reply"
	EventActionDispatch EventKind = "action_dispatch"
	EventObservation    EventKind = "observation"
	EventDelegation     EventKind = "delegation"
	EventIterationLimit EventKind = "iteration_limit"
	EventTaskEnd        EventKind = "task_end"
	EventWarning        EventKind = "warning"
	EventError          EventKind = "error"
)

// TaskEvent is a typed event emitted by the task loop. Depth identifies
// which hop of a delegation chain produced the event.
type TaskEvent struct {
	Kind      EventKind      `json:"kind"`
	Timestamp time.Time      `json:"timestamp"`
	TaskID    string         `json:"task_id"`
	AgentID   string         `json:"agent_id"`
	Depth     int            `json:"depth"`
	Data      map[string]any `json:"data,omitempty"`
}

// EventEmitter delivers typed events to the host application via a
// buffered channel. Emission never blocks the loop; when the buffer is
// full the event is dropped.
type EventEmitter struct {
	ch     chan TaskEvent
	closed bool
	mu     sync.Mutex
}

// NewEventEmitter creates an EventEmitter with the given buffer size.
func NewEventEmitter(bufferSize int) *EventEmitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &EventEmitter{ch: make(chan TaskEvent, bufferSize)}
}

// Emit sends an event. If the emitter is closed or the buffer is full, the
// event is silently dropped.
func (e *EventEmitter) Emit(event TaskEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	event.Timestamp = time.Now()
	select {
	case e.ch <- event:
	default:
		// Channel full; drop rather than block the loop.
	}
}

// Events returns the read-only event channel.
func (e *EventEmitter) Events() <-chan TaskEvent {
	return e.ch
}

// Close closes the event channel. Safe to call multiple times.
func (e *EventEmitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		close(e.ch)
	}
}
