package aig

import "sort"

// Coi computes the cone of influence of the given root node ids: backward
// reachability over AND fanins, with latch inputs expanding to their
// next-state edges. The constant-false node is always in the result.
func (a *Aig) Coi(roots []int) map[int]struct{} {
	latches := a.latchByInput()
	cone := map[int]struct{}{0: {}}
	var queue []int
	push := func(id int) {
		if _, ok := cone[id]; !ok {
			cone[id] = struct{}{}
			queue = append(queue, id)
		}
	}
	for _, r := range roots {
		push(r)
	}
	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if a.nodes[id].IsAnd() {
			push(a.nodes[id].fanin0.NodeID())
			push(a.nodes[id].fanin1.NodeID())
		} else if l, ok := latches[id]; ok {
			push(l.Next.NodeID())
		}
	}

	return cone
}

// CoiRefine drops everything outside the cone of influence of the
// property roots, returning a fresh graph with dense monotone ids and a
// restoration map from new ids back to the receiver's ids. The receiver
// is left untouched.
//
// Roots are the constraints, outputs, bads, justice and fairness edges,
// plus latch inputs with a gated (non-constant) initial value together
// with that value, plus every latch input whenever justice or fairness
// properties are present.
func (a *Aig) CoiRefine() (*Aig, map[int]int) {
	var roots []int
	for _, e := range a.Constraints {
		roots = append(roots, e.NodeID())
	}
	for _, e := range a.Outputs {
		roots = append(roots, e.NodeID())
	}
	for _, e := range a.Bads {
		roots = append(roots, e.NodeID())
	}
	for _, j := range a.Justice {
		for _, e := range j {
			roots = append(roots, e.NodeID())
		}
	}
	for _, e := range a.Fairness {
		roots = append(roots, e.NodeID())
	}
	for _, l := range a.Latches {
		if l.Init.IsGated() {
			init, _ := l.Init.Edge()
			roots = append(roots, init.NodeID(), l.Input)
		}
	}
	if len(a.Justice) > 0 || len(a.Fairness) > 0 {
		for _, l := range a.Latches {
			roots = append(roots, l.Input)
		}
	}

	cone := a.Coi(roots)
	keep := make([]int, 0, len(cone))
	for id := range cone {
		keep = append(keep, id)
	}
	sort.Ints(keep)
	remap := make(map[int]int, len(keep))
	for newID, oldID := range keep {
		remap[oldID] = newID
	}
	mapID := func(id int) int {
		newID, ok := remap[id]
		if !ok {
			panic("aig: coi refine reached an id outside the cone")
		}

		return newID
	}
	mapEdge := func(e Edge) Edge { return e.mapID(mapID) }

	res := &Aig{
		nodes:   make([]Node, 0, len(keep)),
		Symbols: make(map[int]string),
	}
	restore := make(map[int]int, len(keep))
	for _, oldID := range keep {
		restore[remap[oldID]] = oldID
		res.nodes = append(res.nodes, a.nodes[oldID].mapID(mapID))
	}
	for _, input := range a.Inputs {
		if _, ok := remap[input]; ok {
			res.AddInput(remap[input])
		}
	}
	for _, l := range a.Latches {
		if _, ok := remap[l.Input]; !ok {
			continue
		}
		res.AddLatch(remap[l.Input], mapEdge(l.Next), l.Init.mapID(mapID))
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
		if newID, ok := remap[id]; ok {
			res.Symbols[newID] = s
		}
	}

	return res, restore
}
