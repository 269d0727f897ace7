package aig

// Time-frame unrolling. Unroll extends the receiver by one more frame of
// the source graph: latch inputs map to their current next-state images,
// source leaves become fresh inputs, and the source's property edges are
// re-appended through the frame map. UnrollTo repeats the step k times on
// a clone, leaving the receiver untouched; at k=0 the result is the
// receiver, frame for frame.

// Unroll extends the receiver in place by one time frame of src. The
// receiver must be a k-frame expansion of src (in particular, src's arena
// must be an id-aligned prefix shape of the receiver's roles), which
// holds for every graph produced by UnrollTo.
func (a *Aig) Unroll(src *Aig) {
	nextMap := make(map[int]Edge, src.NumNodes())
	nextMap[0] = ConstEdge(false)
	for _, l := range a.Latches {
		nextMap[l.Input] = l.Next
	}
	for id := 1; id < src.NumNodes(); id++ {
		if _, done := nextMap[id]; done {
			continue
		}
		if src.nodes[id].IsAnd() {
			fanin0 := src.nodes[id].fanin0
			fanin1 := src.nodes[id].fanin1
			img0 := nextMap[fanin0.NodeID()].NotIf(fanin0.Compl())
			img1 := nextMap[fanin1.NodeID()].NotIf(fanin1.Compl())
			nextMap[id] = a.NewAnd(img0, img1)
		} else {
			nextMap[id] = EdgeTo(a.NewInput())
		}
	}
	mapEdge := func(e Edge) Edge { return nextMap[e.NodeID()].NotIf(e.Compl()) }

	for i := range a.Latches {
		a.Latches[i].Next = mapEdge(src.Latches[i].Next)
	}
	for _, o := range src.Outputs {
		a.Outputs = append(a.Outputs, mapEdge(o))
	}
	for _, b := range src.Bads {
		a.Bads = append(a.Bads, mapEdge(b))
	}
	for _, c := range src.Constraints {
		a.Constraints = append(a.Constraints, mapEdge(c))
	}
	for _, j := range src.Justice {
		a.Justice = append(a.Justice, mapEdges(j, mapEdge))
	}
	for _, f := range src.Fairness {
		a.Fairness = append(a.Fairness, mapEdge(f))
	}
}

// UnrollTo returns the k-step time-frame expansion of the receiver:
// latches retain their originals while outputs, bads, constraints,
// justice and fairness accumulate one image per frame.
func (a *Aig) UnrollTo(k int) *Aig {
	res := a.Clone()
	for frame := 0; frame < k; frame++ {
		res.Unroll(a)
	}

	return res
}
