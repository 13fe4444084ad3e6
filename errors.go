package tfsm

import "fmt"

// ErrDuplicateState is returned by Build when the same state id is declared
// more than once on a single builder. Last-wins overwriting is refused
// because it would silently reorder the state's transition list.
type ErrDuplicateState struct {
	State StateID
}

func (e *ErrDuplicateState) Error() string {
	return fmt.Sprintf("tfsm: state %q declared more than once", e.State)
}

// ErrUnknownState is returned when a handle resolves to no declared state:
// a transition's source or target during Build, or a machine's initial
// state. Ref names the referencing slot.
type ErrUnknownState struct {
	State StateID
	Ref   string
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("tfsm: %s references undefined state %q", e.Ref, e.State)
}
