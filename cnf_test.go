package aig_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aig "github.com/verikit/goaig"
	"github.com/verikit/goaig/logic"
	"github.com/verikit/goaig/sat"
)

// checkEquisat verifies, by full enumeration over the inputs and the
// latch state, that the formula defines every root edge: asserting a
// root at its simulated value must be satisfiable, asserting it at the
// complement must not.
func checkEquisat(t *testing.T, g *aig.Aig, cnf logic.CNF, roots []aig.Edge) {
	t.Helper()
	frozen := append([]int(nil), g.Inputs...)
	for _, l := range g.Latches {
		frozen = append(frozen, l.Input)
	}
	require.LessOrEqual(t, len(frozen), 10, "enumeration harness is exponential")

	solver := sat.NewWithCNF(cnf)
	for mask := 0; mask < 1<<len(frozen); mask++ {
		input := make([]aig.Ternary, len(g.Inputs))
		state := make([]aig.Ternary, len(g.Latches))
		assumptions := make([]logic.Lit, 0, len(frozen))
		for bit, id := range frozen {
			v := mask&(1<<bit) != 0
			if bit < len(input) {
				input[bit] = aig.TernaryOf(v)
			} else {
				state[bit-len(input)] = aig.TernaryOf(v)
			}
			assumptions = append(assumptions, aig.EdgeTo(id).Lit().NotIf(!v))
		}
		value := g.TernarySimulate(input, state)
		for _, root := range roots {
			want := value[root.NodeID()].NotIf(root.Compl()) == aig.TernaryTrue
			rootLit := root.Lit().NotIf(!want)

			solver.Assume(assumptions...)
			solver.Assume(rootLit)
			assert.True(t, solver.Solve(),
				"mask %b: root %v at its value %v must be satisfiable", mask, root, want)

			solver.Assume(assumptions...)
			solver.Assume(rootLit.Not())
			assert.False(t, solver.Solve(),
				"mask %b: root %v against its value %v must be unsatisfiable", mask, root, want)
		}
	}
}

// xorCircuit builds the AND-of-NANDs XOR idiom with the top node as the only bad.
func xorCircuit() (*aig.Aig, aig.Edge) {
	g := aig.New()
	a := aig.EdgeTo(g.NewInput())
	b := aig.EdgeTo(g.NewInput())
	x := g.NewAnd(a, b)
	y := g.NewAnd(a.Not(), b.Not())
	n := g.NewAnd(x.Not(), y.Not())
	g.Bads = append(g.Bads, n)

	return g, n
}

// TestCNF_XorEquisat runs the enumeration check on the XOR circuit with
// both encoders.
func TestCNF_XorEquisat(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		g, n := xorCircuit()
		checkEquisat(t, g, g.CNF(optimize), []aig.Edge{n})
	}
}

// TestCNF_XorEncoding verifies that cnf(true) carries the four-clause
// XOR encoding on the top node.
func TestCNF_XorEncoding(t *testing.T) {
	g, n := xorCircuit()
	cnf := g.CNF(true)

	a := aig.EdgeTo(g.Inputs[0]).Lit()
	b := aig.EdgeTo(g.Inputs[1]).Lit()
	top := n.Lit()
	for _, want := range []logic.Clause{
		logic.NewClause(top.Not(), a.Not(), b.Not()),
		logic.NewClause(top.Not(), a, b),
		logic.NewClause(top, a.Not(), b),
		logic.NewClause(top, a, b.Not()),
	} {
		assert.True(t, containsClause(cnf, want), "missing clause %v", want)
	}
}

// TestCNF_IteEquisat runs the enumeration check on the ITE idiom.
func TestCNF_IteEquisat(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		g := aig.New()
		c := aig.EdgeTo(g.NewInput())
		th := aig.EdgeTo(g.NewInput())
		el := aig.EdgeTo(g.NewInput())
		x := g.NewAnd(c, th.Not())
		y := g.NewAnd(c.Not(), el.Not())
		n := g.NewAnd(x.Not(), y.Not())
		g.Bads = append(g.Bads, n)

		checkEquisat(t, g, g.CNF(optimize), []aig.Edge{n})
	}
}

// TestCNF_MixedCombinational checks a deeper circuit mixing polarities
// and shared subterms.
func TestCNF_MixedCombinational(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		g := aig.New()
		a := aig.EdgeTo(g.NewInput())
		b := aig.EdgeTo(g.NewInput())
		c := aig.EdgeTo(g.NewInput())
		d := aig.EdgeTo(g.NewInput())
		ab := g.NewAnd(a, b.Not())
		cd := g.NewOr(c, d)
		top := g.NewAnd(ab.Not(), cd)
		side := g.NewEq(ab, d)
		g.Outputs = append(g.Outputs, top)
		g.Bads = append(g.Bads, side.Not())

		checkEquisat(t, g, g.CNF(optimize), []aig.Edge{top, side.Not()})
	}
}

// TestCNF_Sequential covers latch roots: the state variable is frozen
// and the next-state function is defined by the formula.
func TestCNF_Sequential(t *testing.T) {
	g := aig.New()
	in := aig.EdgeTo(g.NewInput())
	l := g.NewLatch(aig.ConstEdge(false), aig.InitConst(false))
	next := g.NewAnd(in, aig.EdgeTo(l))
	g.Latches[0].Next = next
	g.Bads = append(g.Bads, aig.EdgeTo(l))

	checkEquisat(t, g, g.CNF(false), []aig.Edge{next, aig.EdgeTo(l)})
}

// TestCNF_UnitConstant verifies the leading unit clause asserting the
// constant node.
func TestCNF_UnitConstant(t *testing.T) {
	g := aig.New()
	cnf := g.CNF(false)
	require.NotEmpty(t, cnf)
	assert.Equal(t, logic.NewClause(aig.ConstEdge(true).Lit()), cnf[0])
}

// TestOptimizedCNF_Polarity verifies the polarity-aware walk: a positive
// AND root materializes only the two implication clauses of its cone.
func TestOptimizedCNF_Polarity(t *testing.T) {
	g := aig.New()
	a := aig.EdgeTo(g.NewInput())
	b := aig.EdgeTo(g.NewInput())
	n := g.NewAnd(a, b)

	pos := g.OptimizedCNF([]aig.Edge{n})
	require.Len(t, pos, 2)
	for _, clause := range pos {
		assert.Len(t, clause, 2)
	}

	neg := g.OptimizedCNF([]aig.Edge{n.Not()})
	require.Len(t, neg, 1)
	assert.Len(t, neg[0], 3)
}

// TestOptimizedCNF_ChasesLatches verifies that the walk crosses the
// latch boundary through the next-state edge.
func TestOptimizedCNF_ChasesLatches(t *testing.T) {
	g := aig.New()
	in := aig.EdgeTo(g.NewInput())
	l := g.NewLatch(aig.ConstEdge(false), aig.InitX())
	next := g.NewAnd(in, aig.EdgeTo(l).Not())
	g.Latches[0].Next = next

	// The walk reaches next positively through l, then ¬next through the
	// ¬l occurrence inside next itself: two implication clauses plus one
	// negative-polarity clause.
	cnf := g.OptimizedCNF([]aig.Edge{aig.EdgeTo(l)})
	require.Len(t, cnf, 3)
}

// containsClause reports set-wise membership of a clause in a formula.
func containsClause(cnf logic.CNF, want logic.Clause) bool {
	for _, c := range cnf {
		if sameClause(c, want) {
			return true
		}
	}

	return false
}

// sameClause compares two clauses as literal sets.
func sameClause(a, b logic.Clause) bool {
	if len(a) != len(b) {
		return false
	}
	for _, l := range a {
		if !b.Has(l) {
			return false
		}
	}

	return true
}

// ExampleAig_CNF extracts a formula and discharges it with the solver.
func ExampleAig_CNF() {
	g := aig.New()
	a := aig.EdgeTo(g.NewInput())
	b := aig.EdgeTo(g.NewInput())
	g.Bads = append(g.Bads, g.NewAnd(a, b))

	s := sat.NewWithCNF(g.CNF(false))
	s.Assume(g.Bads[0].Lit())
	fmt.Println(s.Solve())
	// Output: true
}
