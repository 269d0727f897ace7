package aig

// Reencode packs the graph into the canonical role-ordered numbering:
// id 0 (constant false), then the inputs in order, then the latch inputs
// in order, then the AND gates in arena order. Allocation goes through
// the trivial constructor so that every produced id matches its predicted
// id one-to-one; a mismatch means the arena was corrupted and panics.
// The receiver is left untouched.
func (a *Aig) Reencode() *Aig {
	encode := make(map[int]int, len(a.nodes))
	encode[0] = 0
	maxID := 0
	for _, input := range a.Inputs {
		maxID++
		encode[input] = maxID
	}
	for _, l := range a.Latches {
		maxID++
		encode[l.Input] = maxID
	}
	for id := range a.nodes {
		if a.nodes[id].IsAnd() {
			maxID++
			encode[id] = maxID
		}
	}
	if maxID+1 != len(a.nodes) {
		panic("aig: reencode found unregistered leaf nodes")
	}
	mapID := func(id int) int {
		newID, ok := encode[id]
		if !ok {
			panic("aig: reencode reached an unmapped id")
		}

		return newID
	}
	mapEdge := func(e Edge) Edge { return e.mapID(mapID) }

	res := New()
	for _, input := range a.Inputs {
		if got := res.NewInput(); got != encode[input] {
			panic("aig: reencode input id drifted")
		}
	}
	for _, l := range a.Latches {
		if got := res.NewLatch(mapEdge(l.Next), l.Init.mapID(mapID)); got != encode[l.Input] {
			panic("aig: reencode latch id drifted")
		}
	}
	for id := 1; id < len(a.nodes); id++ {
		if !a.nodes[id].IsAnd() {
			continue
		}
		fanin0 := mapEdge(a.nodes[id].fanin0)
		fanin1 := mapEdge(a.nodes[id].fanin1)
		if got := res.TrivialNewAnd(fanin0, fanin1); got.NodeID() != encode[id] {
			panic("aig: reencode gate id drifted")
		}
	}
	res.Outputs = mapEdges(a.Outputs, mapEdge)
	res.Bads = mapEdges(a.Bads, mapEdge)
	res.Constraints = mapEdges(a.Constraints, mapEdge)
	res.Fairness = mapEdges(a.Fairness, mapEdge)
	res.Justice = make([][]Edge, len(a.Justice))
	for i, j := range a.Justice {
		res.Justice[i] = mapEdges(j, mapEdge)
	}
	for id, s := range a.Symbols {
		res.Symbols[mapID(id)] = s
	}

	return res
}
