package aig

import "errors"

// Sentinel errors for AIGER import.
var (
	// ErrModel indicates a structurally invalid AIGER description: a
	// literal outside the arena, a gate slot colliding with a leaf, or a
	// node left undefined by the file.
	ErrModel = errors.New("aig: invalid aiger model")
)
