package aig

// Structural builder: allocation of leaves and AND gates, plus the
// derived OR/IMPLY/EQ forms. NewAnd performs constant folding and
// idempotence rewrites before touching the arena; the Trivial variants
// always allocate, which callers such as Reencode rely on for one-to-one
// arena correspondence.

// newLeafNode appends a fresh leaf to the arena and returns its id.
func (a *Aig) newLeafNode() int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, Node{id: id, kind: nodeLeaf})

	return id
}

// NewInput allocates a leaf node, registers it as a primary input, and
// returns its id.
func (a *Aig) NewInput() int {
	input := a.newLeafNode()
	a.Inputs = append(a.Inputs, input)

	return input
}

// AddInput registers an already-allocated leaf id as a primary input.
func (a *Aig) AddInput(input int) {
	a.Inputs = append(a.Inputs, input)
}

// NewLatch allocates a leaf node, registers it as a latch with the given
// next-state edge and initial value, and returns the leaf id.
func (a *Aig) NewLatch(next Edge, init Init) int {
	input := a.newLeafNode()
	a.Latches = append(a.Latches, NewLatchValue(input, next, init))

	return input
}

// AddLatch registers an already-allocated leaf id as a latch.
func (a *Aig) AddLatch(input int, next Edge, init Init) {
	a.Latches = append(a.Latches, NewLatchValue(input, next, init))
}

// TrivialNewAnd allocates an AND gate for the canonicalized fanin pair
// without any folding, and returns the positive edge to it.
func (a *Aig) TrivialNewAnd(fanin0, fanin1 Edge) Edge {
	id := len(a.nodes)
	a.nodes = append(a.nodes, newAndNode(id, fanin0, fanin1))

	return EdgeTo(id)
}

// NewAnd returns an edge denoting fanin0 ∧ fanin1, folding constants and
// idempotence before allocating:
//
//	1 ∧ x = x    0 ∧ x = 0    x ∧ x = x    x ∧ ¬x = 0
func (a *Aig) NewAnd(fanin0, fanin1 Edge) Edge {
	if fanin0.NodeID() > fanin1.NodeID() {
		fanin0, fanin1 = fanin1, fanin0
	}
	switch {
	case fanin0 == ConstEdge(true):
		return fanin1
	case fanin0 == ConstEdge(false):
		return ConstEdge(false)
	case fanin1 == ConstEdge(true):
		return fanin0
	case fanin1 == ConstEdge(false):
		return ConstEdge(false)
	case fanin0 == fanin1:
		return fanin0
	case fanin0 == fanin1.Not():
		return ConstEdge(false)
	}

	return a.TrivialNewAnd(fanin0, fanin1)
}

// TrivialNewOr is the non-folding dual of NewOr.
func (a *Aig) TrivialNewOr(fanin0, fanin1 Edge) Edge {
	return a.TrivialNewAnd(fanin0.Not(), fanin1.Not()).Not()
}

// NewOr returns an edge denoting fanin0 ∨ fanin1.
func (a *Aig) NewOr(fanin0, fanin1 Edge) Edge {
	return a.NewAnd(fanin0.Not(), fanin1.Not()).Not()
}

// NewImply returns an edge denoting fanin0 → fanin1.
func (a *Aig) NewImply(fanin0, fanin1 Edge) Edge {
	return a.NewOr(fanin0.Not(), fanin1)
}

// NewEq returns an edge denoting fanin0 ↔ fanin1.
func (a *Aig) NewEq(fanin0, fanin1 Edge) Edge {
	x := a.NewAnd(fanin0, fanin1)
	y := a.NewAnd(fanin0.Not(), fanin1.Not())

	return a.NewOr(x, y)
}

// TrivialNewAnds folds the edges left-to-right with TrivialNewAnd.
// The empty conjunction is constant true.
func (a *Aig) TrivialNewAnds(fanin []Edge) Edge {
	switch len(fanin) {
	case 0:
		return ConstEdge(true)
	case 1:
		return fanin[0]
	}
	res := a.TrivialNewAnd(fanin[0], fanin[1])
	for _, f := range fanin[2:] {
		res = a.TrivialNewAnd(res, f)
	}

	return res
}

// NewAnds folds the edges with NewAnd, starting from the constant-true
// identity. The empty conjunction is constant true.
func (a *Aig) NewAnds(fanin []Edge) Edge {
	switch len(fanin) {
	case 0:
		return ConstEdge(true)
	case 1:
		return fanin[0]
	}
	res := ConstEdge(true)
	for _, f := range fanin {
		res = a.NewAnd(res, f)
	}

	return res
}

// TrivialNewOrs folds the edges with TrivialNewOr via de Morgan.
func (a *Aig) TrivialNewOrs(fanin []Edge) Edge {
	neg := make([]Edge, len(fanin))
	for i, f := range fanin {
		neg[i] = f.Not()
	}

	return a.TrivialNewAnds(neg).Not()
}

// NewOrs folds the edges with NewOr via de Morgan. The empty disjunction
// is constant false.
func (a *Aig) NewOrs(fanin []Edge) Edge {
	neg := make([]Edge, len(fanin))
	for i, f := range fanin {
		neg[i] = f.Not()
	}

	return a.NewAnds(neg).Not()
}
