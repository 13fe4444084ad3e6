package tfsm_test

import (
	"errors"
	"testing"

	"github.com/enetx/g"
	. "github.com/enetx/tfsm"
)

func TestBuild_DanglingTarget(t *testing.T) {
	_, err := New[int, string]().
		State("A", 0).
		Transition("A", "go", "Missing").
		Build()
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.State, StateID("Missing"))
	assertEqual(t, unknown.Ref, "transition target")
}

func TestBuild_DanglingSource(t *testing.T) {
	_, err := New[int, string]().
		State("B", 0).
		Transition("Missing", "go", "B").
		Build()
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.State, StateID("Missing"))
	assertEqual(t, unknown.Ref, "transition source")
}

func TestBuild_DuplicateState(t *testing.T) {
	_, err := New[int, string]().
		State("A", 1).
		State("A", 2).
		Build()
	assertError(t, err)

	var dup *ErrDuplicateState
	assertTrue(t, errors.As(err, &dup))
	assertEqual(t, dup.State, StateID("A"))
}

func TestBuild_ForwardReferences(t *testing.T) {
	// Transitions may be declared before the states they reference; handles
	// are only resolved by Build.
	top, err := New[int, string]().
		Transition("A", "go", "B").
		State("A", 0).
		State("B", 0).
		Build()
	assertNoError(t, err)

	m, err := top.NewMachine("A")
	assertNoError(t, err)
	assertTrue(t, m.Dispatch(NewEvent("go", 0)))
	assertEqual(t, m.Current(), StateID("B"))
}

func TestNewMachine_UnknownInitial(t *testing.T) {
	top, err := New[int, string]().
		State("A", 0).
		Build()
	assertNoError(t, err)

	_, err = top.NewMachine("Missing")
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.Ref, "initial state")
}

func TestTopology_States(t *testing.T) {
	top, err := New[int, string]().
		State("c", 0).
		State("a", 0).
		State("b", 0).
		Transition("a", "go", "b").
		Build()
	assertNoError(t, err)

	assertTrue(t, top.Contains("a"))
	assertFalse(t, top.Contains("z"))

	ids := top.States()
	assertTrue(t, ids.Eq(g.SliceOf[StateID]("a", "b", "c")))
}
