package taskloop

import (
	"strings"
	"testing"
)

func TestTruncateObservationShortPassesThrough(t *testing.T) {
	s := "short result"
	if got := truncateObservation(s, 4000); got != s {
		t.Errorf("expected pass-through, got %q", got)
	}
}

func TestTruncateObservationKeepsHeadAndTail(t *testing.T) {
	s := strings.Repeat("a", 3000) + strings.Repeat("z", 3000)
	got := truncateObservation(s, 4000)

	if !strings.HasPrefix(got, strings.Repeat("a", 2000)) {
		t.Error("expected head preserved")
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 2000)) {
		t.Error("expected tail preserved")
	}
	if !strings.Contains(got, "[... 2000 characters omitted ...]") {
		t.Errorf("expected omission marker, got %q", got[1990:2050])
	}
}

func TestCorrectiveObservationNamesVocabulary(t *testing.T) {
	obs := correctiveObservation([]ActionKind{ActionRunAutomation, ActionComplete})
	if !strings.Contains(obs, "run_automation, complete") {
		t.Errorf("expected vocabulary list, got %q", obs)
	}
}

func TestUnknownPeerObservation(t *testing.T) {
	withPeers := unknownPeerObservation("Zed", []string{"Alice", "Bob"})
	if !strings.Contains(withPeers, "Alice, Bob") {
		t.Errorf("expected known peer names, got %q", withPeers)
	}

	noPeers := unknownPeerObservation("Zed", nil)
	if !strings.Contains(noPeers, "no peer agents available") {
		t.Errorf("expected no-peers wording, got %q", noPeers)
	}
}
