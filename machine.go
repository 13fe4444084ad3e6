// Package tfsm provides a table-driven finite state machine: an immutable,
// handle-validated Topology of states and transitions built once, and
// lightweight Machine cursors dispatching events over it. It is built with
// types and utilities from the github.com/enetx/g library.
package tfsm

import "github.com/enetx/g"

// Outcome is the result of handling one event.
type Outcome uint8

const (
	// Transitioned: a transition matched, its guard allowed it, and the
	// machine advanced to the target state.
	Transitioned Outcome = iota
	// NoMatchingTransition: the current state declares no transition for the
	// event's identifier. A normal outcome, not a failure.
	NoMatchingTransition
	// GuardRejected: the first matching transition's guard declined the
	// event. No callbacks ran and the cursor is unchanged.
	GuardRejected
)

// Applied reports whether the machine advanced.
func (o Outcome) Applied() bool { return o == Transitioned }

func (o Outcome) String() string {
	switch o {
	case Transitioned:
		return "transitioned"
	case NoMatchingTransition:
		return "no matching transition"
	case GuardRejected:
		return "guard rejected"
	default:
		return "unknown outcome"
	}
}

// Machine is a cursor over a Topology. The cursor is its only mutable field
// and is advanced exclusively by Handle, exactly once per applied transition.
//
// A Machine is not safe for concurrent use and provides no reentrancy guard:
// do not dispatch on the same Machine from within one of its own guards or
// callbacks. Independent Machines sharing one Topology may run on separate
// goroutines.
type Machine[D any, E comparable] struct {
	topology *Topology[D, E]
	initial  *state[D, E]
	current  *state[D, E]
}

// NewMachine creates a Machine positioned at the given initial state.
func (t *Topology[D, E]) NewMachine(initial StateID) (*Machine[D, E], error) {
	start := t.states.Get(initial)
	if start.IsNone() {
		return nil, &ErrUnknownState{State: initial, Ref: "initial state"}
	}

	return &Machine[D, E]{topology: t, initial: start.Some(), current: start.Some()}, nil
}

// Current returns the id of the state the cursor points at.
func (m *Machine[D, E]) Current() StateID {
	return m.current.id
}

// Reset returns the cursor to the machine's initial state without running
// any callbacks.
func (m *Machine[D, E]) Reset() {
	m.current = m.initial
}

// Handle submits one event and applies at most one transition.
//
// The current state's transitions are scanned in declaration order and the
// first one whose event identifier equals the event's is taken; later
// duplicates are never evaluated. No match leaves the cursor untouched. A
// matched transition's guard, if present, may still decline the event, in
// which case no callback runs. Otherwise the outgoing state's exit hook, the
// transition's action (both with the outgoing state's payload) and the
// target state's entry hook (with the target's payload) run in that order,
// each at most once, and the cursor advances. There is no rollback across
// the three callbacks.
func (m *Machine[D, E]) Handle(event Event[D, E]) Outcome {
	current := m.current

	matched := g.None[transition[D, E]]()
	for t := range current.transitions.Iter() {
		if t.event == event.ID {
			matched = g.Some(t)
			break
		}
	}

	if matched.IsNone() {
		return NoMatchingTransition
	}

	t := matched.Some()
	if t.guard.IsSome() && !t.guard.Some()(current.data, event) {
		return GuardRejected
	}

	if current.exit.IsSome() {
		current.exit.Some()(current.data, event)
	}

	if t.action.IsSome() {
		t.action.Some()(current.data, event)
	}

	next := t.target
	if next.entry.IsSome() {
		next.entry.Some()(next.data, event)
	}

	m.current = next
	return Transitioned
}

// Dispatch is the boolean projection of Handle: true when a transition was
// applied, false when no transition matched or a guard declined the event.
func (m *Machine[D, E]) Dispatch(event Event[D, E]) bool {
	return m.Handle(event).Applied()
}
