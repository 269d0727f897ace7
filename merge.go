package aig

// Merge concatenates other onto the receiver: other's ids are offset by
// the receiver's arena length minus one (the constant node is shared) and
// every role list is appended. Used for product constructions.
func (a *Aig) Merge(other *Aig) {
	offset := a.NumNodes() - 1
	mapID := func(id int) int {
		if id == 0 {
			return 0
		}

		return id + offset
	}
	mapEdge := func(e Edge) Edge { return e.mapID(mapID) }

	for id := 1; id < other.NumNodes(); id++ {
		a.nodes = append(a.nodes, other.nodes[id].mapID(mapID))
	}
	for _, input := range other.Inputs {
		a.Inputs = append(a.Inputs, mapID(input))
	}
	for _, l := range other.Latches {
		a.AddLatch(mapID(l.Input), mapEdge(l.Next), l.Init.mapID(mapID))
	}
	a.Outputs = append(a.Outputs, mapEdges(other.Outputs, mapEdge)...)
	a.Bads = append(a.Bads, mapEdges(other.Bads, mapEdge)...)
	a.Constraints = append(a.Constraints, mapEdges(other.Constraints, mapEdge)...)
	a.Fairness = append(a.Fairness, mapEdges(other.Fairness, mapEdge)...)
	for _, j := range other.Justice {
		a.Justice = append(a.Justice, mapEdges(j, mapEdge))
	}
	for id, s := range other.Symbols {
		a.Symbols[mapID(id)] = s
	}
}
