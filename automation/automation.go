package automation

import (
	"context"
	"sync"
)

// EntryPointKind identifies how an automation run is normally triggered.
type EntryPointKind string

const (
	KindManual         EntryPointKind = "manual"
	KindInboundRequest EntryPointKind = "inbound-request"
	KindConversational EntryPointKind = "conversational"
	KindFormSubmission EntryPointKind = "form-submission"
	KindScheduled      EntryPointKind = "scheduled"
)

// EntryPoint is one trigger mechanism declared on an automation.
type EntryPoint struct {
	Kind    EntryPointKind `json:"kind"`
	Enabled bool           `json:"enabled"`
}

// Automation is a pre-defined unit of work executed by the external engine.
type Automation struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Active      bool         `json:"active"`
	EntryPoints []EntryPoint `json:"entry_points"`
}

// Summary is the catalog listing shape shown to agents.
type Summary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Catalog looks up the automations visible to an agent. Implementations
// must tolerate concurrent lookups from independent task runs.
type Catalog interface {
	// Find resolves an automation by id for the given agent. Returns a
	// *NotFoundError when the automation does not exist or the agent lacks
	// execute rights on it.
	Find(ctx context.Context, agentID, automationID string) (*Automation, error)

	// ListVisibleTo enumerates the automations the agent may see.
	ListVisibleTo(ctx context.Context, agentID string) ([]Summary, error)
}

// MemoryCatalog is an in-memory Catalog keyed by agent grants. It backs
// tests and embedded deployments; production catalogs live behind the same
// interface.
type MemoryCatalog struct {
	automations map[string]*Automation
	grants      map[string]map[string]bool // agentID -> automationID -> granted
	mu          sync.RWMutex
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		automations: make(map[string]*Automation),
		grants:      make(map[string]map[string]bool),
	}
}

// Add registers an automation and grants the listed agents execute rights.
func (c *MemoryCatalog) Add(a Automation, agentIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := a
	c.automations[a.ID] = &stored
	for _, id := range agentIDs {
		if c.grants[id] == nil {
			c.grants[id] = make(map[string]bool)
		}
		c.grants[id][a.ID] = true
	}
}

func (c *MemoryCatalog) Find(_ context.Context, agentID, automationID string) (*Automation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.automations[automationID]
	if !ok || !c.grants[agentID][automationID] {
		return nil, &NotFoundError{AutomationID: automationID}
	}
	cp := *a
	cp.EntryPoints = append([]EntryPoint(nil), a.EntryPoints...)
	return &cp, nil
}

func (c *MemoryCatalog) ListVisibleTo(_ context.Context, agentID string) ([]Summary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Summary
	for id, granted := range c.grants[agentID] {
		if !granted {
			continue
		}
		if a, ok := c.automations[id]; ok {
			out = append(out, Summary{ID: a.ID, Name: a.Name, Active: a.Active})
		}
	}
	return out, nil
}
