package tfsm

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the machine's
// topology for visualization. The current state is highlighted, terminal
// states (no outgoing transitions) are double-circled, and guarded edges
// are dashed.
func (m *Machine[D, E]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.initial.id))

	ids := m.topology.States()
	grouped := g.NewMap[g.Pair[StateID, StateID], g.Slice[g.String]]()
	outgoing := g.NewSet[StateID]()

	for id := range ids.Iter() {
		st := m.topology.states.Get(id).Some()

		for t := range st.transitions.Iter() {
			key := g.Pair[StateID, StateID]{Key: id, Value: t.target.id}

			label := g.Format("{}", t.event)
			if t.guard.IsSome() {
				label += " (guarded)"
			}

			grouped.Entry(key).
				AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
				OrInsert(g.SliceOf(label))
		}

		if st.transitions.NotEmpty() {
			outgoing.Insert(id)
		}
	}

	for id := range ids.Iter() {
		st := m.topology.states.Get(id).Some()

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", id))

		switch {
		case id == m.current.id:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(id):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		var hooks g.Slice[g.String]

		if st.entry.IsSome() {
			hooks.Push("entry")
		}

		if st.exit.IsSome() {
			hooks.Push("exit")
		}

		if hooks.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", hooks.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", id, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair, labels := range grouped.Iter() {
		from, to := pair.Key, pair.Value

		var edge g.Slice[g.String]
		label := labels.Join("\\n")

		edge.Push(g.Format("label=\" {} \"", label))

		if label.Contains("(guarded)") {
			edge.Push("style=dashed", "color=red", "arrowhead=odiamond")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", from, to, edge.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}
