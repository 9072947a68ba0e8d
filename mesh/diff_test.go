package mesh

import (
	"testing"

	"github.com/kr/pretty"
)

// assertSameTopology fails the test and prints a readable field-by-field
// diff via kr/pretty when two Face values disagree on anything beyond
// their alive bookkeeping flag.
func assertSameTopology(t *testing.T, want, got Face) {
	t.Helper()
	want.alive, got.alive = false, false
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("face topology mismatch:\n%s", diff)
	}
}
