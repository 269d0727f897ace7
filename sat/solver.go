package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/verikit/goaig/logic"
)

// Solver wraps a gini instance behind the logic.Lit vocabulary.
type Solver struct {
	g *gini.Gini
}

// New returns an empty solver.
func New() *Solver {
	return &Solver{g: gini.New()}
}

// NewWithCNF returns a solver pre-loaded with the given formula.
func NewWithCNF(cnf logic.CNF) *Solver {
	s := New()
	s.AddCNF(cnf)

	return s
}

// AddClause loads one clause into the solver.
func (s *Solver) AddClause(c logic.Clause) {
	for _, l := range c {
		s.g.Add(toZ(l))
	}
	s.g.Add(z.LitNull)
}

// AddCNF loads every clause of the formula.
func (s *Solver) AddCNF(cnf logic.CNF) {
	for _, c := range cnf {
		s.AddClause(c)
	}
}

// Assume registers assumption literals scoped to the next Solve call.
func (s *Solver) Assume(lits ...logic.Lit) {
	for _, l := range lits {
		s.g.Assume(toZ(l))
	}
}

// Solve runs the solver under the pending assumptions, reporting
// satisfiability.
func (s *Solver) Solve() bool {
	return s.g.Solve() == 1
}

// Value reads the literal's value in the latest model. Only meaningful
// after a satisfiable Solve.
func (s *Solver) Value(l logic.Lit) bool {
	return s.g.Value(toZ(l))
}

// toZ maps a logic literal onto gini's literal space. Variable 0 (the
// constant node) is valid here, hence the one-based shift.
func toZ(l logic.Lit) z.Lit {
	m := z.Var(l.Var() + 1).Pos()
	if l.Neg() {
		m = m.Not()
	}

	return m
}
