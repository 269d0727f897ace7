package logic

// CNF is a conjunction of clauses.
type CNF []Clause

// DNF is a disjunction of cubes.
type DNF []Cube

// AddClause appends a clause to the formula.
func (f *CNF) AddClause(c Clause) { *f = append(*f, c) }

// Not negates the formula via de Morgan, yielding the DNF of
// complemented clauses.
func (f CNF) Not() DNF {
	dnf := make(DNF, len(f))
	for i, c := range f {
		dnf[i] = c.Not()
	}

	return dnf
}

// MaxVar returns the largest variable index appearing in the formula,
// or -1 for an empty formula.
func (f CNF) MaxVar() int {
	maxVar := -1
	for _, c := range f {
		for _, l := range c {
			if l.Var() > maxVar {
				maxVar = l.Var()
			}
		}
	}

	return maxVar
}

// AddCube appends a cube to the formula.
func (f *DNF) AddCube(c Cube) { *f = append(*f, c) }

// Not negates the formula via de Morgan, yielding the CNF of
// complemented cubes.
func (f DNF) Not() CNF {
	cnf := make(CNF, len(f))
	for i, c := range f {
		cnf[i] = c.Not()
	}

	return cnf
}
