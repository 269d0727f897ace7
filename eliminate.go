package aig

import (
	"sort"

	"github.com/verikit/goaig/logic"
)

// Node-level CNF elimination. Each node id owns the clauses that define
// it, the set of ids its clauses depend on, and the set of ids whose
// clauses mention it. An internal, non-frozen node is eliminated by
// resolving its defining clauses against every occurrence of the node in
// its fanouts' clauses; the elimination is kept only when the resolvents,
// after tautology removal and subsumption, do not outnumber the clauses
// they replace. Sweeps run in ascending id order until a full sweep makes
// no update.

// nodeCNF is the per-node clause context.
type nodeCNF struct {
	clauses []logic.Clause
	deps    map[int]struct{} // ids in own clauses, other than the node itself
	outs    map[int]struct{} // ids whose clauses mention the node
}

// cnfContext carries the per-node contexts and the frozen id set.
type cnfContext struct {
	aig    *Aig
	nodes  []nodeCNF
	frozen []bool
}

// newCNFContext builds the contexts by running the root-reachable clause
// emission, then marks the frozen ids: inputs, latch inputs, latch-next
// targets, constraints, outputs, and bads are never eliminated.
func (a *Aig) newCNFContext(optimize bool) *cnfContext {
	c := &cnfContext{
		aig:    a,
		nodes:  make([]nodeCNF, len(a.nodes)),
		frozen: make([]bool, len(a.nodes)),
	}
	c.frozen[0] = true
	for _, i := range a.Inputs {
		c.frozen[i] = true
	}
	for _, l := range a.Latches {
		c.frozen[l.Input] = true
		c.frozen[l.Next.NodeID()] = true
	}
	for _, e := range a.Constraints {
		c.frozen[e.NodeID()] = true
	}
	for _, e := range a.Outputs {
		c.frozen[e.NodeID()] = true
	}
	for _, e := range a.Bads {
		c.frozen[e.NodeID()] = true
	}
	c.emit(optimize)

	return c
}

// add registers a clause under its owning node and maintains the
// dependency and outgoing sets.
func (c *cnfContext) add(owner int, clause logic.Clause) {
	own := &c.nodes[owner]
	own.clauses = append(own.clauses, clause)
	for _, l := range clause {
		v := l.Var()
		if v == owner {
			continue
		}
		if own.deps == nil {
			own.deps = make(map[int]struct{})
		}
		own.deps[v] = struct{}{}
		dep := &c.nodes[v]
		if dep.outs == nil {
			dep.outs = make(map[int]struct{})
		}
		dep.outs[owner] = struct{}{}
	}
}

// eliminateToFixpoint sweeps ascending node ids, attempting to eliminate
// each, until a full sweep changes nothing.
func (c *cnfContext) eliminateToFixpoint() {
	for changed := true; changed; {
		changed = false
		for id := 1; id < len(c.nodes); id++ {
			if c.tryEliminate(id) {
				changed = true
			}
		}
	}
}

// ownedClause tracks a resolvent together with the fanout context that
// will own it after acceptance.
type ownedClause struct {
	owner  int
	clause logic.Clause
}

// tryEliminate attempts to eliminate node n, reporting whether the
// contexts changed.
func (c *cnfContext) tryEliminate(n int) bool {
	if c.frozen[n] || len(c.nodes[n].clauses) == 0 {
		return false
	}
	posLit := logic.MkLit(n, false)
	negLit := logic.MkLit(n, true)

	// Partition own clauses by the polarity of n.
	var pos, neg []logic.Clause
	for _, cl := range c.nodes[n].clauses {
		if cl.Has(posLit) {
			pos = append(pos, cl)
		} else {
			neg = append(neg, cl)
		}
	}

	// Move the occurrences of n out of every fanout context.
	fanouts := make([]int, 0, len(c.nodes[n].outs))
	for o := range c.nodes[n].outs {
		if o != n {
			fanouts = append(fanouts, o)
		}
	}
	sort.Ints(fanouts)
	moved := 0
	op := make(map[int][]logic.Clause)
	on := make(map[int][]logic.Clause)
	for _, o := range fanouts {
		kept := c.nodes[o].clauses[:0]
		for _, cl := range c.nodes[o].clauses {
			switch {
			case cl.Has(posLit):
				op[o] = append(op[o], cl)
				moved++
			case cl.Has(negLit):
				on[o] = append(on[o], cl)
				moved++
			default:
				kept = append(kept, cl)
			}
		}
		c.nodes[o].clauses = kept
	}
	before := len(pos) + len(neg) + moved

	// Cross-resolve on n: pos × on, neg × op. Each resolvent stays with
	// the fanout whose clause it absorbed.
	var resolvents []ownedClause
	for _, o := range fanouts {
		for _, fc := range on[o] {
			for _, pc := range pos {
				if r, taut := resolveOn(n, pc, fc); !taut {
					resolvents = append(resolvents, ownedClause{owner: o, clause: r})
				}
			}
		}
		for _, fc := range op[o] {
			for _, nc := range neg {
				if r, taut := resolveOn(n, nc, fc); !taut {
					resolvents = append(resolvents, ownedClause{owner: o, clause: r})
				}
			}
		}
	}
	resolvents = simplifyClauses(resolvents)

	if len(resolvents) > before {
		// Rollback: the moved clauses return to their fanouts.
		for _, o := range fanouts {
			c.nodes[o].clauses = append(c.nodes[o].clauses, op[o]...)
			c.nodes[o].clauses = append(c.nodes[o].clauses, on[o]...)
		}

		return false
	}

	// Accept: distribute the resolvents, detach n from its dependencies,
	// and clear its context.
	for _, r := range resolvents {
		c.add(r.owner, r.clause)
	}
	for d := range c.nodes[n].deps {
		delete(c.nodes[d].outs, n)
	}
	c.nodes[n] = nodeCNF{}

	return true
}

// resolveOn resolves two clauses on variable v, reporting a tautological
// resolvent (one containing a literal and its complement on some other
// variable) via taut.
func resolveOn(v int, c1, c2 logic.Clause) (res logic.Clause, taut bool) {
	seen := make(map[logic.Lit]struct{}, len(c1)+len(c2))
	for _, src := range [2]logic.Clause{c1, c2} {
		for _, l := range src {
			if l.Var() == v {
				continue
			}
			if _, dup := seen[l]; dup {
				continue
			}
			if _, clash := seen[l.Not()]; clash {
				return nil, true
			}
			seen[l] = struct{}{}
			res = append(res, l)
		}
	}

	return res, false
}

// simplifyClauses runs clause subsumption and self-subsuming merging over
// the resolvent set until stable: of two clauses where one contains the
// other only the shorter survives, and two equal-length clauses differing
// in exactly one complementary literal merge by dropping that literal.
func simplifyClauses(in []ownedClause) []ownedClause {
	live := append([]ownedClause(nil), in...)
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(live) && !changed; i++ {
			for j := i + 1; j < len(live) && !changed; j++ {
				a, b := live[i].clause, live[j].clause
				switch {
				case containsAll(b, a):
					live = append(live[:j], live[j+1:]...)
					changed = true
				case containsAll(a, b):
					live[i] = live[j]
					live = append(live[:j], live[j+1:]...)
					changed = true
				default:
					if merged, ok := mergeOnComplement(a, b); ok {
						live[i] = ownedClause{owner: live[i].owner, clause: merged}
						live = append(live[:j], live[j+1:]...)
						changed = true
					}
				}
			}
		}
	}

	return live
}

// containsAll reports whether every literal of sub occurs in super.
func containsAll(super, sub logic.Clause) bool {
	if len(sub) > len(super) {
		return false
	}
	for _, l := range sub {
		if !super.Has(l) {
			return false
		}
	}

	return true
}

// mergeOnComplement merges two equal-length clauses that differ in exactly
// one complementary literal, dropping it.
func mergeOnComplement(a, b logic.Clause) (logic.Clause, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	pivot := logic.Lit(0)
	found := false
	for _, l := range a {
		if b.Has(l) {
			continue
		}
		if !b.Has(l.Not()) || found {
			return nil, false
		}
		pivot, found = l, true
	}
	if !found {
		return nil, false
	}
	merged := make(logic.Clause, 0, len(a)-1)
	for _, l := range a {
		if l != pivot {
			merged = append(merged, l)
		}
	}

	return merged, true
}

// result concatenates the per-node clause lists in id order, led by the
// unit clause asserting the constant node.
func (c *cnfContext) result() logic.CNF {
	ans := logic.CNF{logic.NewClause(ConstEdge(true).Lit())}
	for id := range c.nodes {
		ans = append(ans, c.nodes[id].clauses...)
	}

	return ans
}
