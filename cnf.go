package aig

import "github.com/verikit/goaig/logic"

// CNF extraction. Roots are every edge a verification backend can ask
// about: latch next-state functions, constraints, bads, outputs, justice
// sets, and fairness edges. A single descending-id walk suffices to close
// the reference set transitively, because AND gates only reference
// strictly smaller ids. Each referenced AND gate contributes its Tseitin
// clauses; with optimization enabled, recognized XOR and ITE subgraphs
// contribute their tighter four-clause encodings instead.

// cnfRoots collects the root node ids for CNF extraction.
func (a *Aig) cnfRoots() []int {
	var roots []int
	for _, l := range a.Latches {
		roots = append(roots, l.Next.NodeID())
	}
	for _, e := range a.Constraints {
		roots = append(roots, e.NodeID())
	}
	for _, e := range a.Bads {
		roots = append(roots, e.NodeID())
	}
	for _, e := range a.Outputs {
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

	return roots
}

// CNF returns the DAG-aware CNF of the graph: the definitional clauses of
// every AND gate reachable from the roots, the unit clause asserting the
// constant node, and, after the node-level elimination engine has run to
// fixpoint, no clauses for internal nodes whose elimination did not grow
// the formula. With optimize set, XOR and ITE subgraphs are emitted as
// four-clause encodings.
//
// The result is equisatisfiable with the root functions: restricting any
// model to the root variables yields exactly the assignments the circuit
// permits.
func (a *Aig) CNF(optimize bool) logic.CNF {
	ctx := a.newCNFContext(optimize)
	ctx.eliminateToFixpoint()

	return ctx.result()
}

// emit walks the arena from high to low ids, generating clauses for every
// AND gate in the reference set into the per-node contexts.
func (c *cnfContext) emit(optimize bool) {
	a := c.aig
	refs := make([]bool, len(a.nodes))
	for _, r := range a.cnfRoots() {
		refs[r] = true
	}
	for i := len(a.nodes) - 1; i >= 1; i-- {
		n := a.nodes[i]
		if !n.IsAnd() || !refs[i] {
			continue
		}
		nPos := EdgeTo(i).Lit()
		if optimize {
			if x, y, ok := a.IsXor(i); ok {
				refs[x.NodeID()] = true
				refs[y.NodeID()] = true
				xl, yl := x.Lit(), y.Lit()
				c.add(i, logic.NewClause(nPos.Not(), xl.Not(), yl.Not()))
				c.add(i, logic.NewClause(nPos.Not(), xl, yl))
				c.add(i, logic.NewClause(nPos, xl.Not(), yl))
				c.add(i, logic.NewClause(nPos, xl, yl.Not()))
				continue
			}
			if cond, then, els, ok := a.IsIte(i); ok {
				refs[cond.NodeID()] = true
				refs[then.NodeID()] = true
				refs[els.NodeID()] = true
				cl, tl, el := cond.Lit(), then.Lit(), els.Lit()
				c.add(i, logic.NewClause(nPos.Not(), cl.Not(), tl))
				c.add(i, logic.NewClause(nPos, cl.Not(), tl.Not()))
				c.add(i, logic.NewClause(nPos.Not(), cl, el))
				c.add(i, logic.NewClause(nPos, cl, el.Not()))
				continue
			}
		}
		fanin0, fanin1 := n.fanin0, n.fanin1
		refs[fanin0.NodeID()] = true
		refs[fanin1.NodeID()] = true
		f0, f1 := fanin0.Lit(), fanin1.Lit()
		c.add(i, logic.NewClause(nPos.Not(), f0))
		c.add(i, logic.NewClause(nPos.Not(), f1))
		c.add(i, logic.NewClause(nPos, f0.Not(), f1.Not()))
	}
}

// OptimizedCNF is a polarity-aware forward walk from the given root
// edges: only the implication direction each root actually requires is
// materialized, and latch boundaries are crossed by chasing the latch's
// next-state edge with the inversion propagated. Distinct polarities of
// the same node are tracked separately.
func (a *Aig) OptimizedCNF(roots []Edge) logic.CNF {
	latches := a.latchByInput()
	refs := make(map[Edge]struct{})
	var queue []Edge
	addRef := func(e Edge) {
		if _, ok := refs[e]; !ok {
			refs[e] = struct{}{}
			queue = append(queue, e)
		}
	}
	for _, r := range roots {
		addRef(r)
	}
	var ans logic.CNF
	for len(queue) > 0 {
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		i := e.NodeID()
		n := a.nodes[i]
		switch {
		case n.IsAnd() && !e.Compl():
			addRef(n.fanin0)
			addRef(n.fanin1)
			nPos := EdgeTo(i).Lit()
			ans.AddClause(logic.NewClause(nPos.Not(), n.fanin0.Lit()))
			ans.AddClause(logic.NewClause(nPos.Not(), n.fanin1.Lit()))
		case n.IsAnd():
			addRef(n.fanin0.Not())
			addRef(n.fanin1.Not())
			nPos := EdgeTo(i).Lit()
			ans.AddClause(logic.NewClause(nPos, n.fanin0.Lit().Not(), n.fanin1.Lit().Not()))
		default:
			if l, ok := latches[i]; ok {
				addRef(l.Next.NotIf(e.Compl()))
			}
		}
	}

	return ans
}
