package aig

import "github.com/verikit/goaig/logic"

// Edge is an inversion-aware reference to a node: the node id plus a
// complement bit. Negation flips the bit; the referenced node is
// unaffected by the polarity of edges pointing at it.
//
// Edges are plain values. Copying one never aliases arena state.
type Edge struct {
	id    int
	compl bool
}

// NewEdge builds an edge to the given node id with the given complement bit.
func NewEdge(id int, compl bool) Edge { return Edge{id: id, compl: compl} }

// EdgeTo builds the positive (uncomplemented) edge to id.
func EdgeTo(id int) Edge { return Edge{id: id} }

// ConstEdge returns the constant edge of the given polarity: both point
// at node 0 (constant false), with polarity true carrying the complement.
func ConstEdge(polarity bool) Edge { return Edge{id: 0, compl: polarity} }

// NodeID returns the id of the node the edge references.
func (e Edge) NodeID() int { return e.id }

// Compl reports whether the edge is complemented.
func (e Edge) Compl() bool { return e.compl }

// Not returns the complement edge.
func (e Edge) Not() Edge {
	e.compl = !e.compl

	return e
}

// NotIf returns the complement edge when cond holds, e otherwise.
func (e Edge) NotIf(cond bool) Edge {
	if cond {
		return e.Not()
	}

	return e
}

// IsConst reports whether the edge references the constant node.
func (e Edge) IsConst() bool { return e.id == 0 }

// IsConstOf reports whether the edge denotes exactly the given constant.
func (e Edge) IsConstOf(polarity bool) bool { return e == ConstEdge(polarity) }

// TryConst returns the constant value the edge denotes, if any.
func (e Edge) TryConst() (bool, bool) {
	if !e.IsConst() {
		return false, false
	}

	return e.compl, true
}

// Lit converts the edge to its SAT literal: 2·id for a positive edge,
// 2·id+1 for a complemented one. Constant false is literal 0, constant
// true literal 1.
func (e Edge) Lit() logic.Lit { return logic.MkLit(e.id, e.compl) }

// EdgeFromLit is the inverse of Lit.
func EdgeFromLit(l logic.Lit) Edge { return Edge{id: l.Var(), compl: l.Neg()} }

// mapID rebases the edge onto a remapped id space, preserving polarity.
func (e Edge) mapID(m func(int) int) Edge { return Edge{id: m(e.id), compl: e.compl} }
