package taskloop

import "context"

// findPeer resolves a peer agent by display name among agent-kind
// identities, excluding the caller itself. Absence is a normal outcome
// (nil, nil): the orchestrator answers it with a corrective observation,
// not an error.
func (o *Orchestrator) findPeer(ctx context.Context, selfID, displayName string) (*AgentIdentity, []string, error) {
	peers, err := o.directory.ListPeerAgents(ctx, selfID)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(peers))
	for i := range peers {
		names[i] = peers[i].Name
	}
	for i := range peers {
		if peers[i].Name == displayName {
			return &peers[i], names, nil
		}
	}
	return nil, names, nil
}
