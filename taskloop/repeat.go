package taskloop

import (
	"crypto/sha256"
	"fmt"
)

// repeatWindow is how many identical consecutive actions trigger a nudge.
const repeatWindow = 4

// actionSignature computes a deterministic signature for a dispatched
// action (kind + target + hash of the free-text payload).
func actionSignature(kind ActionKind, target, payload string) string {
	h := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("%s:%s:%x", kind, target, h[:8])
}

// repeatedTail reports how many times the final signature repeats
// consecutively at the end of sigs. Returns 0 when sigs is empty.
func repeatedTail(sigs []string) int {
	if len(sigs) == 0 {
		return 0
	}
	last := sigs[len(sigs)-1]
	count := 0
	for i := len(sigs) - 1; i >= 0 && sigs[i] == last; i-- {
		count++
	}
	return count
}
