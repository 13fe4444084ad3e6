package tfsm_test

import (
	"testing"

	. "github.com/enetx/tfsm"
)

func TestMachine_ToDOT(t *testing.T) {
	top, err := New[int, string]().
		State("Locked", 0).
		State("Unlocked", 0).
		Transition("Locked", "coin", "Unlocked", When[int, string](func(_ int, e Event[int, string]) bool {
			return e.Data >= 50
		})).
		Transition("Unlocked", "push", "Locked").
		Build()
	assertNoError(t, err)

	m, err := top.NewMachine("Locked")
	assertNoError(t, err)

	dot := m.ToDOT()
	assertTrue(t, dot.Contains("digraph FSM"))
	assertTrue(t, dot.Contains("\"Locked\""))
	assertTrue(t, dot.Contains("\"Unlocked\""))
	assertTrue(t, dot.Contains("coin (guarded)"))
	assertTrue(t, dot.Contains("style=dashed"))
	assertTrue(t, dot.Contains("__start -> \"Locked\""))
	// The current state is highlighted.
	assertTrue(t, dot.Contains("fillcolor=\"#90ee90\""))
}
