package logic

import "strconv"

// Lit is a Boolean literal: a nonnegative variable index plus a sign bit,
// packed as 2·variable + sign. Even literals are positive, odd literals
// negated. This is the AIGER wire encoding, so literal 0 denotes the
// constant-false variable and literal 1 its negation (constant true).
type Lit uint32

// MkLit packs a variable index and a negation flag into a Lit.
func MkLit(v int, neg bool) Lit {
	l := Lit(v) << 1
	if neg {
		l |= 1
	}

	return l
}

// Var returns the variable index of l.
func (l Lit) Var() int { return int(l >> 1) }

// Neg reports whether l is a negated literal.
func (l Lit) Neg() bool { return l&1 == 1 }

// Not returns the complement literal.
func (l Lit) Not() Lit { return l ^ 1 }

// NotIf returns the complement of l when cond holds, l otherwise.
func (l Lit) NotIf(cond bool) Lit {
	if cond {
		return l.Not()
	}

	return l
}

// String renders l with DIMACS-style polarity, e.g. "3" or "-3".
func (l Lit) String() string {
	if l.Neg() {
		return "-" + strconv.Itoa(l.Var())
	}

	return strconv.Itoa(l.Var())
}
