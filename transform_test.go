package aig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aig "github.com/verikit/goaig"
)

// TestMove_FoldsConstraints verifies the sticky latch: constraints are
// cleared, a new latch with init 1 appears, and the first bad is gated
// by the constraint history.
func TestMove_FoldsConstraints(t *testing.T) {
	g := aig.New()
	in := aig.EdgeTo(g.NewInput())
	cond := aig.EdgeTo(g.NewInput())
	g.Bads = append(g.Bads, in)
	g.Constraints = append(g.Constraints, cond)

	moved := g.Move()

	assert.Empty(t, moved.Constraints)
	require.Len(t, moved.Latches, 1)
	v, known := moved.Latches[0].Init.Const()
	assert.True(t, known && v, "the sticky latch starts at 1")
	assert.Len(t, g.Constraints, 1, "the receiver is untouched")

	// With the constraint satisfied and the latch at 1, the bad tracks
	// the original; with the constraint violated, the bad is forced 0.
	sim := func(inV, condV, latchV aig.Ternary) aig.Ternary {
		value := moved.TernarySimulate([]aig.Ternary{inV, condV}, []aig.Ternary{latchV})

		return value[moved.Bads[0].NodeID()].NotIf(moved.Bads[0].Compl())
	}
	assert.Equal(t, aig.TernaryTrue, sim(aig.TernaryTrue, aig.TernaryTrue, aig.TernaryTrue))
	assert.Equal(t, aig.TernaryFalse, sim(aig.TernaryTrue, aig.TernaryFalse, aig.TernaryTrue))
	assert.Equal(t, aig.TernaryFalse, sim(aig.TernaryTrue, aig.TernaryTrue, aig.TernaryFalse))
}

// TestCompressProperty replaces the bads with their disjunction and
// hands back the originals.
func TestCompressProperty(t *testing.T) {
	g := aig.New()
	a := aig.EdgeTo(g.NewInput())
	b := aig.EdgeTo(g.NewInput())
	g.Bads = append(g.Bads, a, b.Not())

	originals := g.CompressProperty()

	assert.Equal(t, []aig.Edge{a, b.Not()}, originals)
	require.Len(t, g.Bads, 1)
	for mask := 0; mask < 4; mask++ {
		va, vb := mask&1 != 0, mask&2 != 0
		value := g.TernarySimulate(
			[]aig.Ternary{aig.TernaryOf(va), aig.TernaryOf(vb)}, nil)
		got := value[g.Bads[0].NodeID()].NotIf(g.Bads[0].Compl())
		assert.Equal(t, aig.TernaryOf(va || !vb), got, "mask %d", mask)
	}
}

// TestCompressProperty_SingleBad verifies the degenerate one-bad case
// passes through.
func TestCompressProperty_SingleBad(t *testing.T) {
	g := aig.New()
	a := aig.EdgeTo(g.NewInput())
	g.Bads = append(g.Bads, a)

	originals := g.CompressProperty()
	assert.Equal(t, []aig.Edge{a}, originals)
	require.Len(t, g.Bads, 1)
	assert.Equal(t, a, g.Bads[0])
}

// TestGateInitToConstraint lowers a gated initial value into an
// initial-frame constraint and clears the latch init.
func TestGateInitToConstraint(t *testing.T) {
	g := aig.New()
	gate := aig.EdgeTo(g.NewInput())
	l := g.NewLatch(aig.ConstEdge(false), aig.InitEdge(gate))
	latches := len(g.Latches)

	g.GateInitToConstraint()

	assert.True(t, g.Latches[0].Init.IsX(), "gated init is cleared")
	require.Len(t, g.Latches, latches+1, "one-shot initial latch added")
	initial := g.Latches[latches]
	v, known := initial.Init.Const()
	assert.True(t, known && v)
	assert.Equal(t, aig.ConstEdge(false), initial.Next, "initial latch falls to 0")
	require.Len(t, g.Constraints, 1)

	// In the initial frame (initial latch = 1) the constraint forces
	// l ⇔ gate; afterwards (initial latch = 0) it is vacuous.
	eval := func(gateV, lV, initV aig.Ternary) aig.Ternary {
		value := g.TernarySimulate(
			[]aig.Ternary{gateV}, []aig.Ternary{lV, initV})

		return value[g.Constraints[0].NodeID()].NotIf(g.Constraints[0].Compl())
	}
	assert.Equal(t, aig.TernaryTrue, eval(aig.TernaryTrue, aig.TernaryTrue, aig.TernaryTrue))
	assert.Equal(t, aig.TernaryFalse, eval(aig.TernaryTrue, aig.TernaryFalse, aig.TernaryTrue))
	assert.Equal(t, aig.TernaryTrue, eval(aig.TernaryTrue, aig.TernaryFalse, aig.TernaryFalse))
	_ = l
}

// TestGateInitToConstraint_NoGatedInits is a no-op without gated values.
func TestGateInitToConstraint_NoGatedInits(t *testing.T) {
	g := aig.New()
	g.NewLatch(aig.ConstEdge(false), aig.InitConst(true))
	nodes := g.NumNodes()

	g.GateInitToConstraint()

	assert.Equal(t, nodes, g.NumNodes())
	assert.Empty(t, g.Constraints)
	assert.Len(t, g.Latches, 1)
}
