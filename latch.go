package aig

// Init is the initial value of a latch: undefined (X), a constant, or a
// gated edge evaluated in the initial state. The zero value is X.
type Init struct {
	edge  Edge
	known bool
}

// InitX returns the undefined initial value.
func InitX() Init { return Init{} }

// InitConst returns a constant-0 or constant-1 initial value.
func InitConst(v bool) Init { return Init{edge: ConstEdge(v), known: true} }

// InitEdge returns a gated initial value carried by an arbitrary edge.
func InitEdge(e Edge) Init { return Init{edge: e, known: true} }

// IsX reports whether the initial value is undefined.
func (i Init) IsX() bool { return !i.known }

// Edge returns the initial-value edge and whether one is present.
func (i Init) Edge() (Edge, bool) { return i.edge, i.known }

// Const returns the constant the initial value denotes, if it is one.
func (i Init) Const() (bool, bool) {
	if !i.known {
		return false, false
	}

	return i.edge.TryConst()
}

// IsGated reports whether the initial value is a non-constant edge.
func (i Init) IsGated() bool { return i.known && !i.edge.IsConst() }

// mapID rebases a gated initial value onto a remapped id space.
func (i Init) mapID(m func(int) int) Init {
	if i.known {
		i.edge = i.edge.mapID(m)
	}

	return i
}

// Latch is a synchronous state element: Input is the leaf node holding the
// current state, Next the combinational next-state function, Init the
// initial value. Next may reference any arena id, including AND gates
// allocated after the latch leaf.
type Latch struct {
	Input int
	Next  Edge
	Init  Init
}

// NewLatchValue builds a latch value without registering it anywhere.
func NewLatchValue(input int, next Edge, init Init) Latch {
	return Latch{Input: input, Next: next, Init: init}
}
