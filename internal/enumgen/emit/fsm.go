package emit

import (
	"github.com/enumevent/enumevent/internal/enumgen/parse"
)

// FSM is the finite-state-machine companion of a field-less enum: a
// closed state value type plus dispatch helpers that map runtime state
// values back onto the generated event types.
type FSM struct {
	enum *parse.Enum

	// States are the variant names in declaration order. The order fixes
	// the constant values and the transition table layout.
	States []string

	// Triggers requests the enter/exit/transition dispatch helpers;
	// Transition requests the permissive transition predicate.
	Triggers   bool
	Transition bool
}

// writeCode writes the state type, its constants and String method, the
// transition predicate, and the dispatch helpers.
func (f *FSM) writeCode(w *moduleWriter, m *Module) {
	w.Printf("// State enumerates the states of %s. The zero value is the first\n", f.enum.Name)
	w.Printf("// declared state.\n")
	w.Printf("type State int\n\n")

	w.Printf("const (\n")
	for i, s := range f.States {
		if i == 0 {
			w.Printf("State%s State = iota\n", s)
		} else {
			w.Printf("State%s\n", s)
		}
	}
	w.Printf(")\n\n")

	w.Printf("func (s State) String() string {\n")
	w.Printf("switch s {\n")
	for _, s := range f.States {
		w.Printf("case State%s:\nreturn %q\n", s, s)
	}
	w.Printf("}\nreturn \"unknown\"\n}\n")

	if f.Transition {
		w.Printf("\n// CanTransition reports whether from may transition to to. Every\n")
		w.Printf("// ordered pair is allowed, self-transitions included.\n")
		w.Printf("func CanTransition(from, to State) bool { return true }\n")
	}

	if f.Triggers {
		f.writeTriggers(w, m)
	}
}

// writeTriggers writes the enter, exit, and transition dispatch helpers.
// Each helper switches on the runtime state value and hands the matching
// event type to the dispatcher wrapped in the contract's enter, exit, or
// transition envelope.
func (f *FSM) writeTriggers(w *moduleWriter, m *Module) {
	ev := w.eventPkg()
	params := typeParams(w, m.Enum)
	args := typeArgs(m.Enum)

	w.Printf("\n// TriggerEnter dispatches the enter event of state s.\n")
	w.Printf("func TriggerEnter%s(d %s.Dispatcher, s State) {\n", params, ev)
	w.Printf("switch s {\n")
	for _, s := range f.States {
		w.Printf("case State%s:\n", s)
		w.Printf("d.Trigger(%s.Enter[%s%s]{State: %s%s{}})\n", ev, s, args, s, args)
	}
	w.Printf("}\n}\n")

	w.Printf("\n// TriggerExit dispatches the exit event of state s.\n")
	w.Printf("func TriggerExit%s(d %s.Dispatcher, s State) {\n", params, ev)
	w.Printf("switch s {\n")
	for _, s := range f.States {
		w.Printf("case State%s:\n", s)
		w.Printf("d.Trigger(%s.Exit[%s%s]{State: %s%s{}})\n", ev, s, args, s, args)
	}
	w.Printf("}\n}\n")

	n := len(f.States)
	w.Printf("\n// TriggerTransition dispatches the transition event of the ordered\n")
	w.Printf("// pair (from, to), covering all %d combinations.\n", n*n)
	w.Printf("func TriggerTransition%s(d %s.Dispatcher, from, to State) {\n", params, ev)
	w.Printf("switch {\n")
	for _, pair := range statePairs(f.States) {
		from, to := pair[0], pair[1]
		w.Printf("case from == State%s && to == State%s:\n", from, to)
		w.Printf("d.Trigger(%s.Transition[%s%s, %s%s]{From: %s%s{}, To: %s%s{}})\n",
			ev, from, args, to, args, from, args, to, args)
	}
	w.Printf("}\n}\n")
}

// statePairs enumerates every ordered (from, to) pair, from-major in
// declaration order.
func statePairs(states []string) [][2]string {
	pairs := make([][2]string, 0, len(states)*len(states))
	for _, from := range states {
		for _, to := range states {
			pairs = append(pairs, [2]string{from, to})
		}
	}
	return pairs
}
