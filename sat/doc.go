// Package sat adapts the logic.CNF formulas produced by the aig package
// to a SAT solver. The backend is gini; the adapter translates literals
// (node ids double as variables, shifted by one because gini variables
// start at 1), loads clauses, and exposes assumption-scoped solving with
// model readback.
package sat
