package aig

// Aig is an And-Inverter Graph: a node arena indexed by id, role lists
// referencing into it, and a sparse symbol map. Node 0 is always the
// constant-false node; ids are dense and stable for the life of a value.
//
// Role lists are exported and may be rearranged by callers; the arena
// itself is only grown through the builder methods so that structural
// invariants hold for every node.
type Aig struct {
	nodes []Node

	// Inputs lists the leaf ids of the primary inputs, in declaration order.
	Inputs []int

	// Latches lists the state elements, in declaration order.
	Latches []Latch

	// Outputs, Bads, Constraints and Fairness are role edges: circuit
	// outputs, safety-property negations, invariant assumptions, and
	// global fairness edges.
	Outputs     []Edge
	Bads        []Edge
	Constraints []Edge
	Fairness    []Edge

	// Justice lists liveness fairness sets, each a conjunction of
	// infinitely-often edges.
	Justice [][]Edge

	// Symbols maps node ids to optional names. Sparse and unordered.
	Symbols map[int]string
}

// New returns an empty graph holding only the constant-false node.
func New() *Aig {
	return &Aig{
		nodes:   []Node{{id: 0, kind: nodeFalse}},
		Symbols: make(map[int]string),
	}
}

// NumNodes returns the arena length, counting the constant node.
func (a *Aig) NumNodes() int { return len(a.nodes) }

// Node returns the node with the given id. Panics if id is out of range.
func (a *Aig) Node(id int) Node { return a.nodes[id] }

// NodesRange returns the id range [1, NumNodes) excluding the constant node.
func (a *Aig) NodesRange() (int, int) { return 1, len(a.nodes) }

// NodesRangeWithFalse returns the id range [0, NumNodes).
func (a *Aig) NodesRangeWithFalse() (int, int) { return 0, len(a.nodes) }

// Ands calls yield for every AND node in ascending id order, stopping
// early if yield returns false.
func (a *Aig) Ands(yield func(Node) bool) {
	for _, n := range a.nodes {
		if n.IsAnd() && !yield(n) {
			return
		}
	}
}

// NumAnds counts the AND nodes in the arena.
func (a *Aig) NumAnds() int {
	count := 0
	for _, n := range a.nodes {
		if n.IsAnd() {
			count++
		}
	}

	return count
}

// Symbol returns the name attached to a node id, if any.
func (a *Aig) Symbol(id int) (string, bool) {
	s, ok := a.Symbols[id]

	return s, ok
}

// SetSymbol attaches a name to a node id.
func (a *Aig) SetSymbol(id int, s string) {
	a.Symbols[id] = s
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (a *Aig) Clone() *Aig {
	res := &Aig{
		nodes:       append([]Node(nil), a.nodes...),
		Inputs:      append([]int(nil), a.Inputs...),
		Latches:     append([]Latch(nil), a.Latches...),
		Outputs:     append([]Edge(nil), a.Outputs...),
		Bads:        append([]Edge(nil), a.Bads...),
		Constraints: append([]Edge(nil), a.Constraints...),
		Fairness:    append([]Edge(nil), a.Fairness...),
		Justice:     make([][]Edge, len(a.Justice)),
		Symbols:     make(map[int]string, len(a.Symbols)),
	}
	for i, j := range a.Justice {
		res.Justice[i] = append([]Edge(nil), j...)
	}
	for id, s := range a.Symbols {
		res.Symbols[id] = s
	}

	return res
}

// FaninLogicCone marks, per node id, whether the node lies in the
// combinational fanin cone of any of the given edges. Latch inputs are
// treated as leaves: the cone does not cross the state boundary.
func (a *Aig) FaninLogicCone(logic []Edge) []bool {
	flag := make([]bool, len(a.nodes))
	for _, l := range logic {
		flag[l.NodeID()] = true
	}
	for id := len(a.nodes) - 1; id >= 0; id-- {
		if flag[id] && a.nodes[id].IsAnd() {
			flag[a.nodes[id].fanin0.NodeID()] = true
			flag[a.nodes[id].fanin1.NodeID()] = true
		}
	}

	return flag
}

// latchByInput indexes the latch list by its input leaf id.
func (a *Aig) latchByInput() map[int]Latch {
	m := make(map[int]Latch, len(a.Latches))
	for _, l := range a.Latches {
		m[l.Input] = l
	}

	return m
}
