package aig

// Property-compression transforms.

// Move converts constraint-conditional safety into unconstrained safety
// on a fresh copy: a new latch L with initial value 1 and next-state
// L ∧ (∧ constraints) tracks "all past constraints satisfied"; the first
// bad and the first output are conjoined with that next-state, and the
// constraint list is cleared.
func (a *Aig) Move() *Aig {
	res := a.Clone()
	latch := res.newLeafNode()
	constraints := res.NewAnds(append([]Edge(nil), res.Constraints...))
	next := res.NewAnd(EdgeTo(latch), constraints)
	res.AddLatch(latch, next, InitConst(true))
	if len(res.Bads) > 0 {
		res.Bads[0] = res.NewAnd(next, res.Bads[0])
	}
	if len(res.Outputs) > 0 {
		res.Outputs[0] = res.NewAnd(next, res.Outputs[0])
	}
	res.Constraints = nil

	return res
}

// CompressProperty replaces the bad list with the single disjunction of
// its members and returns the originals.
func (a *Aig) CompressProperty() []Edge {
	bads := a.Bads
	a.Bads = nil
	p := a.NewOrs(bads)
	a.Bads = append(a.Bads, p)

	return bads
}

// GateInitToConstraint lowers gated (non-constant) latch initial values
// into invariant constraints. A one-shot "initial state" latch holding 1
// in the first frame and 0 afterwards is added; for each latch l whose
// initial value was the edge g, the constraint initial ⇒ (l ⇔ g) is
// appended and l's initial value cleared to undefined.
func (a *Aig) GateInitToConstraint() {
	type gated struct {
		input int
		init  Edge
	}
	var gateInit []gated
	for i := range a.Latches {
		if !a.Latches[i].Init.IsGated() {
			continue
		}
		init, _ := a.Latches[i].Init.Edge()
		gateInit = append(gateInit, gated{input: a.Latches[i].Input, init: init})
		a.Latches[i].Init = InitX()
	}
	if len(gateInit) == 0 {
		return
	}
	initial := EdgeTo(a.NewLatch(ConstEdge(false), InitConst(true)))
	for _, g := range gateInit {
		eq := a.NewEq(EdgeTo(g.input), g.init)
		a.Constraints = append(a.Constraints, a.NewImply(initial, eq))
	}
}
