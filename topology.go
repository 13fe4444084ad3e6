package tfsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

type (
	// stateDecl is a state as declared on a Builder, before handle resolution.
	stateDecl[D any, E comparable] struct {
		id    StateID
		data  D
		entry g.Option[Action[D, E]]
		exit  g.Option[Action[D, E]]
	}

	// transitionDecl is a transition as declared on a Builder. Source and
	// target are unresolved handles until Build runs.
	transitionDecl[D any, E comparable] struct {
		from   StateID
		event  E
		to     StateID
		guard  g.Option[Guard[D, E]]
		action g.Option[Action[D, E]]
	}

	// Builder accumulates state and transition declarations. States may be
	// declared after the transitions that reference them; all handles are
	// resolved together by Build.
	Builder[D any, E comparable] struct {
		states      g.Slice[stateDecl[D, E]]
		transitions g.Slice[transitionDecl[D, E]]
	}

	// StateOption configures a state declaration.
	StateOption[D any, E comparable] func(*stateDecl[D, E])

	// TransitionOption configures a transition declaration.
	TransitionOption[D any, E comparable] func(*transitionDecl[D, E])

	// Topology is the complete, immutable set of states and transitions
	// produced by Build. It is never mutated afterwards, so a single
	// Topology may back any number of Machine instances, concurrently.
	Topology[D any, E comparable] struct {
		states g.Map[StateID, *state[D, E]]
	}
)

// New creates an empty Builder.
func New[D any, E comparable]() *Builder[D, E] {
	return &Builder[D, E]{}
}

// OnEntry sets the state's entry hook, called with the state's own payload
// after a transition into it.
func OnEntry[D any, E comparable](action Action[D, E]) StateOption[D, E] {
	return func(s *stateDecl[D, E]) { s.entry = g.Some(action) }
}

// OnExit sets the state's exit hook, called with the state's own payload
// before a transition out of it.
func OnExit[D any, E comparable](action Action[D, E]) StateOption[D, E] {
	return func(s *stateDecl[D, E]) { s.exit = g.Some(action) }
}

// When guards the transition. An absent guard behaves as always-true.
func When[D any, E comparable](guard Guard[D, E]) TransitionOption[D, E] {
	return func(t *transitionDecl[D, E]) { t.guard = g.Some(guard) }
}

// Do attaches the transition's action, called with the outgoing state's
// payload between the exit and entry hooks. An absent action is a no-op.
func Do[D any, E comparable](action Action[D, E]) TransitionOption[D, E] {
	return func(t *transitionDecl[D, E]) { t.action = g.Some(action) }
}

// State declares a state with its payload.
func (b *Builder[D, E]) State(id StateID, data D, opts ...StateOption[D, E]) *Builder[D, E] {
	decl := stateDecl[D, E]{
		id:    id,
		data:  data,
		entry: g.None[Action[D, E]](),
		exit:  g.None[Action[D, E]](),
	}

	for _, opt := range opts {
		opt(&decl)
	}

	b.states.Push(decl)
	return b
}

// Transition declares a transition from -> event -> to. A state may declare
// several transitions for the same event identifier; their declaration order
// is significant, the first match wins at dispatch time.
func (b *Builder[D, E]) Transition(from StateID, event E, to StateID, opts ...TransitionOption[D, E]) *Builder[D, E] {
	decl := transitionDecl[D, E]{
		from:   from,
		event:  event,
		to:     to,
		guard:  g.None[Guard[D, E]](),
		action: g.None[Action[D, E]](),
	}

	for _, opt := range opts {
		opt(&decl)
	}

	b.transitions.Push(decl)
	return b
}

// Build places every declared state into the arena, then resolves each
// transition's source and target handle against it. A duplicate state id or
// a handle that resolves to no declared state aborts the build, so a
// non-nil Topology contains no dangling references and dispatch never has
// to validate anything.
func (b *Builder[D, E]) Build() (*Topology[D, E], error) {
	arena := g.NewMap[StateID, *state[D, E]]()

	for decl := range b.states.Iter() {
		if arena.Contains(decl.id) {
			return nil, &ErrDuplicateState{State: decl.id}
		}

		arena.Set(decl.id, &state[D, E]{
			id:    decl.id,
			data:  decl.data,
			entry: decl.entry,
			exit:  decl.exit,
		})
	}

	for decl := range b.transitions.Iter() {
		source := arena.Get(decl.from)
		if source.IsNone() {
			return nil, &ErrUnknownState{State: decl.from, Ref: "transition source"}
		}

		target := arena.Get(decl.to)
		if target.IsNone() {
			return nil, &ErrUnknownState{State: decl.to, Ref: "transition target"}
		}

		source.Some().transitions.Push(transition[D, E]{
			event:  decl.event,
			target: target.Some(),
			guard:  decl.guard,
			action: decl.action,
		})
	}

	return &Topology[D, E]{states: arena}, nil
}

// Contains reports whether the topology defines the given state.
func (t *Topology[D, E]) Contains(id StateID) bool {
	return t.states.Contains(id)
}

// States returns the ids of all defined states, sorted.
func (t *Topology[D, E]) States() g.Slice[StateID] {
	ids := t.states.Keys()
	ids.SortBy(cmp.Cmp)

	return ids
}
