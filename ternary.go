package aig

import "fmt"

// Ternary is a three-valued logic value: 0, 1, or X (unknown). The zero
// value is X.
type Ternary uint8

const (
	// TernaryX is the unknown value.
	TernaryX Ternary = iota
	// TernaryFalse is the constant 0.
	TernaryFalse
	// TernaryTrue is the constant 1.
	TernaryTrue
)

// TernaryOf lifts a Boolean into the ternary domain.
func TernaryOf(b bool) Ternary {
	if b {
		return TernaryTrue
	}

	return TernaryFalse
}

// Not negates the value; ¬X = X.
func (t Ternary) Not() Ternary {
	switch t {
	case TernaryFalse:
		return TernaryTrue
	case TernaryTrue:
		return TernaryFalse
	default:
		return TernaryX
	}
}

// NotIf negates the value when cond holds.
func (t Ternary) NotIf(cond bool) Ternary {
	if cond {
		return t.Not()
	}

	return t
}

// And conjoins two values: X ∧ 0 = 0, X ∧ 1 = X, X ∧ X = X.
func (t Ternary) And(o Ternary) Ternary {
	switch {
	case t == TernaryFalse || o == TernaryFalse:
		return TernaryFalse
	case t == TernaryTrue && o == TernaryTrue:
		return TernaryTrue
	default:
		return TernaryX
	}
}

// Or disjoins two values: X ∨ 1 = 1, X ∨ 0 = X, X ∨ X = X.
func (t Ternary) Or(o Ternary) Ternary {
	switch {
	case t == TernaryTrue || o == TernaryTrue:
		return TernaryTrue
	case t == TernaryFalse && o == TernaryFalse:
		return TernaryFalse
	default:
		return TernaryX
	}
}

// String renders the value as "0", "1" or "X".
func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "0"
	case TernaryTrue:
		return "1"
	default:
		return "X"
	}
}

// TernarySimulate evaluates every node under the given input and latch
// values in one combinational step, returning the per-node value vector.
// The vectors must match the input and latch counts exactly; a mismatch
// is a programming error and panics.
func (a *Aig) TernarySimulate(input, state []Ternary) []Ternary {
	if len(input) != len(a.Inputs) {
		panic(fmt.Sprintf("aig: ternary simulate got %d input values for %d inputs",
			len(input), len(a.Inputs)))
	}
	if len(state) != len(a.Latches) {
		panic(fmt.Sprintf("aig: ternary simulate got %d state values for %d latches",
			len(state), len(a.Latches)))
	}
	value := make([]Ternary, len(a.nodes))
	value[0] = TernaryFalse
	for i, id := range a.Inputs {
		value[id] = input[i]
	}
	for i, l := range a.Latches {
		value[l.Input] = state[i]
	}
	for id := 1; id < len(a.nodes); id++ {
		if !a.nodes[id].IsAnd() {
			continue
		}
		fanin0 := a.nodes[id].fanin0
		fanin1 := a.nodes[id].fanin1
		v0 := value[fanin0.NodeID()].NotIf(fanin0.Compl())
		v1 := value[fanin1.NodeID()].NotIf(fanin1.Compl())
		value[id] = v0.And(v1)
	}

	return value
}

// Simulator is the stateful sequential ternary simulator: it holds the
// current latch state and the node values of the latest step.
type Simulator struct {
	aig   *Aig
	state []Ternary
	value []Ternary
}

// NewSimulator builds a sequential simulator over the given graph,
// starting from the given latch state. The state length must match the
// latch count; a mismatch panics.
func NewSimulator(a *Aig, state []Ternary) *Simulator {
	if len(state) != len(a.Latches) {
		panic(fmt.Sprintf("aig: simulator got %d state values for %d latches",
			len(state), len(a.Latches)))
	}

	return &Simulator{aig: a, state: append([]Ternary(nil), state...)}
}

// Simulate advances one step under the given input vector, updating the
// latch state through each latch's next-state edge.
func (s *Simulator) Simulate(input []Ternary) {
	s.value = s.aig.TernarySimulate(input, s.state)
	for i, l := range s.aig.Latches {
		s.state[i] = s.value[l.Next.NodeID()].NotIf(l.Next.Compl())
	}
}

// Value reads the latest value of an edge, with polarity applied.
func (s *Simulator) Value(e Edge) Ternary {
	return s.value[e.NodeID()].NotIf(e.Compl())
}

// State returns the current latch state vector.
func (s *Simulator) State() []Ternary {
	return append([]Ternary(nil), s.state...)
}
