package aig

// Pattern recognizers over the AND-of-NANDs idioms that encode XOR and
// if-then-else. Recognition is purely local: it inspects the node and its
// two fanin gates only, and is used solely to emit tighter CNF. A failed
// match falls back to the plain AND encoding.

// IsXor recognizes n = ¬(a ∧ b) ∧ ¬(¬a ∧ ¬b), i.e. n ⇔ a ⊕ b, returning
// the operand edges. Both fanins of n must be complemented AND gates whose
// fanin pairs match pointwise with opposite polarity and whose operands
// refer to distinct nodes.
func (a *Aig) IsXor(id int) (x, y Edge, ok bool) {
	n := a.nodes[id]
	if !n.IsAnd() || !n.fanin0.Compl() || !n.fanin1.Compl() {
		return Edge{}, Edge{}, false
	}
	left := a.nodes[n.fanin0.NodeID()]
	right := a.nodes[n.fanin1.NodeID()]
	if !left.IsAnd() || !right.IsAnd() {
		return Edge{}, Edge{}, false
	}
	if left.fanin0 != right.fanin0.Not() || left.fanin1 != right.fanin1.Not() {
		return Edge{}, Edge{}, false
	}
	if left.fanin0.NodeID() == left.fanin1.NodeID() {
		return Edge{}, Edge{}, false
	}

	return left.fanin0, left.fanin1, true
}

// IsIte recognizes n = ¬(c ∧ ¬t) ∧ ¬(¬c ∧ ¬e), i.e. n ⇔ (c ? t : e),
// returning condition, then- and else-edges. The shape is the same
// AND-of-NANDs as XOR, but exactly one complementary pair across the two
// children selects the condition; the remaining two edges, each negated
// once to undo the NAND structure, are the branches. Condition and both
// branches must refer to three distinct nodes.
func (a *Aig) IsIte(id int) (cond, then, els Edge, ok bool) {
	n := a.nodes[id]
	if !n.IsAnd() || !n.fanin0.Compl() || !n.fanin1.Compl() {
		return Edge{}, Edge{}, Edge{}, false
	}
	left := a.nodes[n.fanin0.NodeID()]
	right := a.nodes[n.fanin1.NodeID()]
	if !left.IsAnd() || !right.IsAnd() {
		return Edge{}, Edge{}, Edge{}, false
	}
	lf := [2]Edge{left.fanin0, left.fanin1}
	rf := [2]Edge{right.fanin0, right.fanin1}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if lf[i] != rf[j].Not() {
				continue
			}
			cond, then, els = lf[i], lf[1-i].Not(), rf[1-j].Not()
			if cond.NodeID() == then.NodeID() ||
				cond.NodeID() == els.NodeID() ||
				then.NodeID() == els.NodeID() {
				continue
			}

			return cond, then, els, true
		}
	}

	return Edge{}, Edge{}, Edge{}, false
}
