package eval

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalSnapshots pins the printed repr of representative programs, in
// the same spirit as go-dws's fixture_test.go snapshotting interpreter
// output — scaled down from that file's whole-testsuite sweep to the
// handful of programs elf-lang actually has no fixture corpus for.
func TestEvalSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic_promotion": `1 + 2.5`,
		"list_repr":            `[1, "two", 3.0]`,
		"dict_repr":            `#{"b": 2, "a": 1}`,
		"nested_closures":      `let add = |a| |b| a + b; add(2)(3)`,
	}
	for name, src := range programs {
		result := run(t, src)
		snaps.MatchSnapshot(t, name, result.Repr())
	}
}
