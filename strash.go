package aig

// edgePair is a canonicalized AND fanin pair used as a hash key.
type edgePair struct {
	fanin0 Edge
	fanin1 Edge
}

// Strash structurally hashes the graph: AND gates whose canonicalized
// fanin pairs coincide (after rewriting fanins through already-discovered
// equivalences) collapse onto one representative, and the surviving nodes
// are packed into a fresh graph with dense ids. In the result no two AND
// nodes share a fanin pair, so applying Strash twice equals applying it
// once.
func (a *Aig) Strash() *Aig {
	equiv := make([]int, len(a.nodes))
	for i := range equiv {
		equiv[i] = i
	}
	pairs := make(map[edgePair]int)
	canon := make(map[int]edgePair, len(a.nodes))
	for _, n := range a.nodes {
		if !n.IsAnd() {
			continue
		}
		// AND fanins reference strictly smaller ids, so their equivalence
		// entries are final by the time this node is visited.
		fanin0 := NewEdge(equiv[n.fanin0.NodeID()], n.fanin0.Compl())
		fanin1 := NewEdge(equiv[n.fanin1.NodeID()], n.fanin1.Compl())
		if fanin0.NodeID() > fanin1.NodeID() {
			fanin0, fanin1 = fanin1, fanin0
		}
		key := edgePair{fanin0: fanin0, fanin1: fanin1}
		if rep, ok := pairs[key]; ok {
			equiv[n.id] = rep
			continue
		}
		pairs[key] = n.id
		canon[n.id] = key
	}

	// Pack the representatives into dense ids.
	remap := make([]int, len(a.nodes))
	next := 0
	for id := range a.nodes {
		if equiv[id] == id {
			remap[id] = next
			next++
		}
	}
	mapEdge := func(e Edge) Edge {
		return NewEdge(remap[equiv[e.NodeID()]], e.Compl())
	}
	mapID := func(id int) int { return remap[equiv[id]] }

	res := New()
	for _, n := range a.nodes {
		if equiv[n.id] != n.id {
			continue
		}
		switch {
		case n.IsFalse():
			// already present in the fresh graph
		case n.IsLeaf():
			res.newLeafNode()
		default:
			pair := canon[n.id]
			got := res.TrivialNewAnd(mapEdge(pair.fanin0), mapEdge(pair.fanin1))
			if got.NodeID() != remap[n.id] {
				panic("aig: strash produced an unexpected node id")
			}
		}
	}
	for _, input := range a.Inputs {
		res.AddInput(mapID(input))
	}
	for _, l := range a.Latches {
		res.AddLatch(mapID(l.Input), mapEdge(l.Next), l.Init.mapID(mapID))
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
		rid := mapID(id)
		if _, taken := res.Symbols[rid]; !taken || equiv[id] == id {
			res.Symbols[rid] = s
		}
	}

	return res
}

// mapEdges applies an edge remapping to a role list, returning a new slice.
func mapEdges(edges []Edge, m func(Edge) Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = m(e)
	}

	return out
}
