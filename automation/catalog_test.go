package automation

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryCatalogFindReturnsCopy(t *testing.T) {
	catalog := testCatalog()

	a, err := catalog.Find(context.Background(), "agent-1", "wf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Name = "mutated"
	a.EntryPoints[0].Enabled = false

	again, err := catalog.Find(context.Background(), "agent-1", "wf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Name != "Daily digest" || !again.EntryPoints[0].Enabled {
		t.Error("mutating a Find result must not affect the catalog")
	}
}

func TestMemoryCatalogListVisibleTo(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.Add(Automation{ID: "wf-1", Name: "Digest", Active: true}, "agent-1", "agent-2")
	catalog.Add(Automation{ID: "wf-2", Name: "Cleanup"}, "agent-2")

	visible, err := catalog.ListVisibleTo(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "wf-1" {
		t.Errorf("expected only granted automations, got %+v", visible)
	}

	none, err := catalog.ListVisibleTo(context.Background(), "agent-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no automations for an unknown agent, got %+v", none)
	}
}

func TestMemoryCatalogFindDeniedOrMissing(t *testing.T) {
	catalog := testCatalog()
	for _, tc := range []struct{ agent, automation string }{
		{"agent-1", "wf-missing"},
		{"agent-9", "wf-1"},
	} {
		_, err := catalog.Find(context.Background(), tc.agent, tc.automation)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("%s/%s: expected NotFoundError, got %v", tc.agent, tc.automation, err)
		}
	}
}
