package tfsm

import "github.com/enetx/g"

type (
	// StateID is the handle under which a state is declared in a Builder and
	// against which every transition reference is resolved by Build.
	StateID g.String

	// Event is an external stimulus submitted once per dispatch call. It is
	// transient: the machine never retains it. D is the caller-defined
	// payload type, E the caller-defined event identifier type, constrained
	// only to equality comparability.
	Event[D any, E comparable] struct {
		ID   E
		Data D
	}

	// Guard decides whether a matched transition fires. It receives the
	// outgoing state's payload and the triggering event.
	Guard[D any, E comparable] func(data D, event Event[D, E]) bool

	// Action is a callback run during a transition: as a state's entry or
	// exit hook, or as the transition's own action. Actions have no failure
	// channel; any error handling is internal to the callback.
	Action[D any, E comparable] func(data D, event Event[D, E])

	// transition is a resolved rule between two states. The target pointer
	// is validated by Build, so dispatch never resolves anything.
	transition[D any, E comparable] struct {
		event  E
		target *state[D, E]
		guard  g.Option[Guard[D, E]]
		action g.Option[Action[D, E]]
	}

	// state is an arena entry: payload, optional entry/exit hooks and the
	// outgoing transitions in declaration order.
	state[D any, E comparable] struct {
		id          StateID
		data        D
		entry       g.Option[Action[D, E]]
		exit        g.Option[Action[D, E]]
		transitions g.Slice[transition[D, E]]
	}
)

// NewEvent builds an Event from an identifier and a payload.
func NewEvent[D any, E comparable](id E, data D) Event[D, E] {
	return Event[D, E]{ID: id, Data: data}
}
