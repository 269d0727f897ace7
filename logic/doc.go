// Package logic provides the literal calculus shared by the AIG core and
// its SAT-facing consumers: Lit (a variable with a sign, in the AIGER
// 2·var+negation encoding), Clause (disjunction), Cube (conjunction),
// and the CNF/DNF sequences built from them.
//
// Clause and Cube are complement duals: negating a clause yields the cube
// of negated literals and vice versa; negating a CNF or DNF swaps the two
// forms via de Morgan. The containers carry literals by value and imply no
// further algebraic identities.
package logic
