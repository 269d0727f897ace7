package sat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verikit/goaig/logic"
	"github.com/verikit/goaig/sat"
)

// TestSolver_Basic loads (x ∨ y) ∧ (¬x ∨ y) and checks that y holds in
// every model.
func TestSolver_Basic(t *testing.T) {
	x := logic.MkLit(1, false)
	y := logic.MkLit(2, false)
	s := sat.NewWithCNF(logic.CNF{
		logic.NewClause(x, y),
		logic.NewClause(x.Not(), y),
	})

	require.True(t, s.Solve())
	assert.True(t, s.Value(y))
}

// TestSolver_Assumptions verifies that assumptions are scoped to a
// single Solve call.
func TestSolver_Assumptions(t *testing.T) {
	x := logic.MkLit(1, false)
	y := logic.MkLit(2, false)
	s := sat.NewWithCNF(logic.CNF{logic.NewClause(x.Not(), y)})

	s.Assume(x, y.Not())
	assert.False(t, s.Solve(), "x ∧ ¬y contradicts x → y")

	// The previous assumptions must not linger.
	s.Assume(x)
	require.True(t, s.Solve())
	assert.True(t, s.Value(y))
}

// TestSolver_VarZero covers variable 0, which the adapter shifts onto
// gini's one-based space.
func TestSolver_VarZero(t *testing.T) {
	falseLit := logic.MkLit(0, false)
	s := sat.NewWithCNF(logic.CNF{logic.NewClause(falseLit.Not())})

	require.True(t, s.Solve())
	assert.False(t, s.Value(falseLit))
}

// TestSolver_Unsat covers a plainly contradictory formula.
func TestSolver_Unsat(t *testing.T) {
	x := logic.MkLit(3, false)
	s := sat.New()
	s.AddClause(logic.NewClause(x))
	s.AddClause(logic.NewClause(x.Not()))
	assert.False(t, s.Solve())
}
