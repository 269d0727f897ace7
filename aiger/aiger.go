package aiger

import "errors"

// Sentinel errors for AIGER parsing and emission.
var (
	// ErrParse indicates a malformed AIGER file.
	ErrParse = errors.New("aiger: parse error")

	// ErrEncode indicates a structure that cannot be emitted in the
	// requested format (e.g. non-monotone gates for binary output).
	ErrEncode = errors.New("aiger: encode error")
)

// Symbol is one row of a role section: the role literal, and, for
// latches, the next-state literal and the reset literal. Justice rows
// carry their literal list in Lits instead. Name is the optional symbol
// table entry.
type Symbol struct {
	Lit   uint32
	Next  uint32
	Reset uint32
	Lits  []uint32
	Name  string
}

// And is one AND-gate row: LHS is the even gate literal, RHS0 and RHS1
// the fanin literals. Binary emission requires LHS > RHS0 ≥ RHS1.
type And struct {
	LHS  uint32
	RHS0 uint32
	RHS1 uint32
}

// Aiger is the raw file structure: the header maximum variable index,
// the role sections in file order, the gate list, and trailing comments.
type Aiger struct {
	MaxVar uint32

	Inputs      []Symbol
	Latches     []Symbol
	Outputs     []Symbol
	Bads        []Symbol
	Constraints []Symbol
	Justice     []Symbol
	Fairness    []Symbol
	Ands        []And

	Comments []string
}

// NumInputs returns the input count.
func (a *Aiger) NumInputs() int { return len(a.Inputs) }

// NumLatches returns the latch count.
func (a *Aiger) NumLatches() int { return len(a.Latches) }

// NumAnds returns the AND-gate count.
func (a *Aiger) NumAnds() int { return len(a.Ands) }
