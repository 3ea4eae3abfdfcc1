package taskloop

import (
	"context"
	"sync"
)

// IdentityKind discriminates identity types in the directory. Only
// identities of the agent kind participate in delegation.
type IdentityKind string

const (
	IdentityAgent IdentityKind = "agent"
)

// AgentIdentity is an addressable actor. Identities are provisioned
// out-of-band and read-only to the task loop.
type AgentIdentity struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind IdentityKind `json:"kind"`
}

// Directory is the identity store boundary. Implementations must tolerate
// concurrent lookups from independent task runs.
type Directory interface {
	// FindAgentByID resolves an identity by stable id. Absence is reported
	// as (nil, nil), not an error.
	FindAgentByID(ctx context.Context, id string) (*AgentIdentity, error)

	// ListPeerAgents returns all agent-kind identities except excludeID.
	ListPeerAgents(ctx context.Context, excludeID string) ([]AgentIdentity, error)
}

// MemoryDirectory is an in-memory Directory for tests and embedded use.
type MemoryDirectory struct {
	agents map[string]AgentIdentity
	order  []string
	mu     sync.RWMutex
}

// NewMemoryDirectory creates an empty MemoryDirectory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{agents: make(map[string]AgentIdentity)}
}

// Add registers an identity. The kind defaults to agent when unset.
func (d *MemoryDirectory) Add(a AgentIdentity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if a.Kind == "" {
		a.Kind = IdentityAgent
	}
	if _, exists := d.agents[a.ID]; !exists {
		d.order = append(d.order, a.ID)
	}
	d.agents[a.ID] = a
}

func (d *MemoryDirectory) FindAgentByID(_ context.Context, id string) (*AgentIdentity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.agents[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (d *MemoryDirectory) ListPeerAgents(_ context.Context, excludeID string) ([]AgentIdentity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var peers []AgentIdentity
	for _, id := range d.order {
		a := d.agents[id]
		if a.ID == excludeID || a.Kind != IdentityAgent {
			continue
		}
		peers = append(peers, a)
	}
	return peers, nil
}
