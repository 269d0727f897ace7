package aig

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/verikit/goaig/aiger"
	"github.com/verikit/goaig/logic"
)

// Bridge between the raw aiger structure and the arena. The importer
// materializes num_inputs + num_latches + num_ands + 1 nodes and places
// every node at the id its literal dictates; the exporter emits the
// arena back out, re-encoding first when the binary format's canonical
// layout is required.

// ReadFile parses an AIGER file and imports it.
func ReadFile(path string) (*Aig, error) {
	raw, err := aiger.ParseFile(path)
	if err != nil {
		return nil, err
	}
	a, err := FromAiger(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "aig: import %s", path)
	}

	return a, nil
}

// WriteFile exports the graph to an AIGER file. Paths ending in .aig or
// .aig.gz produce the binary form (re-encoding into the canonical
// role-ordered layout first when necessary); anything else is ASCII.
func (a *Aig) WriteFile(path string) error {
	binary := strings.HasSuffix(path, ".aig") || strings.HasSuffix(path, ".aig.gz")
	src := a
	if binary && !a.roleOrdered() {
		src = a.Reencode()
	}

	return src.ToAiger().WriteFile(path, binary)
}

// FromAiger builds a graph from the raw structure. The legacy reset
// encoding (reset literal equal to the latch's own literal) normalizes
// to an undefined initial value; reset 0 and 1 become constants; any
// other literal becomes a gated initial edge.
func FromAiger(raw *aiger.Aiger) (*Aig, error) {
	nodeLen := raw.NumInputs() + raw.NumLatches() + raw.NumAnds() + 1
	nodes := make([]Node, nodeLen)
	nodes[0] = Node{id: 0, kind: nodeFalse}
	filled := make([]bool, nodeLen)
	filled[0] = true

	place := func(id int, n Node) error {
		if id <= 0 || id >= nodeLen {
			return fmt.Errorf("%w: node id %d outside arena of %d", ErrModel, id, nodeLen)
		}
		if filled[id] {
			return fmt.Errorf("%w: node id %d defined twice", ErrModel, id)
		}
		nodes[id] = n
		filled[id] = true

		return nil
	}
	checkEdge := func(e Edge) error {
		if e.NodeID() >= nodeLen {
			return fmt.Errorf("%w: edge to %d outside arena of %d", ErrModel, e.NodeID(), nodeLen)
		}

		return nil
	}

	res := &Aig{Symbols: make(map[int]string)}
	for _, s := range raw.Inputs {
		id := int(s.Lit / 2)
		if err := place(id, Node{id: id, kind: nodeLeaf}); err != nil {
			return nil, err
		}
		res.Inputs = append(res.Inputs, id)
		if s.Name != "" {
			res.Symbols[id] = s.Name
		}
	}
	for _, s := range raw.Latches {
		id := int(s.Lit / 2)
		if err := place(id, Node{id: id, kind: nodeLeaf}); err != nil {
			return nil, err
		}
		next := EdgeFromLit(logic.Lit(s.Next))
		if err := checkEdge(next); err != nil {
			return nil, err
		}
		var init Init
		switch {
		case s.Reset == s.Lit:
			init = InitX()
		case s.Reset <= 1:
			init = InitConst(s.Reset == 1)
		default:
			init = InitEdge(EdgeFromLit(logic.Lit(s.Reset)))
		}
		if e, known := init.Edge(); known {
			if err := checkEdge(e); err != nil {
				return nil, err
			}
		}
		res.Latches = append(res.Latches, NewLatchValue(id, next, init))
		if s.Name != "" {
			res.Symbols[id] = s.Name
		}
	}
	for _, gate := range raw.Ands {
		id := int(gate.LHS / 2)
		fanin0 := EdgeFromLit(logic.Lit(gate.RHS0))
		fanin1 := EdgeFromLit(logic.Lit(gate.RHS1))
		if err := checkEdge(fanin0); err != nil {
			return nil, err
		}
		if err := checkEdge(fanin1); err != nil {
			return nil, err
		}
		if err := place(id, newAndNode(id, fanin0, fanin1)); err != nil {
			return nil, err
		}
	}
	for id, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: node id %d never defined", ErrModel, id)
		}
	}
	res.nodes = nodes

	importEdges := func(syms []aiger.Symbol) ([]Edge, error) {
		out := make([]Edge, 0, len(syms))
		for _, s := range syms {
			e := EdgeFromLit(logic.Lit(s.Lit))
			if err := checkEdge(e); err != nil {
				return nil, err
			}
			out = append(out, e)
			if s.Name != "" {
				if _, taken := res.Symbols[e.NodeID()]; !taken {
					res.Symbols[e.NodeID()] = s.Name
				}
			}
		}

		return out, nil
	}
	var err error
	if res.Outputs, err = importEdges(raw.Outputs); err != nil {
		return nil, err
	}
	if res.Bads, err = importEdges(raw.Bads); err != nil {
		return nil, err
	}
	if res.Constraints, err = importEdges(raw.Constraints); err != nil {
		return nil, err
	}
	if res.Fairness, err = importEdges(raw.Fairness); err != nil {
		return nil, err
	}
	for _, s := range raw.Justice {
		set := make([]Edge, 0, len(s.Lits))
		for _, lit := range s.Lits {
			e := EdgeFromLit(logic.Lit(lit))
			if err := checkEdge(e); err != nil {
				return nil, err
			}
			set = append(set, e)
		}
		res.Justice = append(res.Justice, set)
	}

	return res, nil
}

// ToAiger exports the arena into the raw structure. Latch resets follow
// the round-trip convention: undefined emits the latch's own literal,
// constants emit 0/1, gated values emit the edge literal. AND fanins are
// listed larger literal first, as the binary format demands.
func (a *Aig) ToAiger() *aiger.Aiger {
	raw := &aiger.Aiger{MaxVar: uint32(a.NumNodes() - 1)}
	for _, input := range a.Inputs {
		raw.Inputs = append(raw.Inputs, aiger.Symbol{
			Lit:  uint32(EdgeTo(input).Lit()),
			Name: a.Symbols[input],
		})
	}
	for _, l := range a.Latches {
		lit := uint32(EdgeTo(l.Input).Lit())
		sym := aiger.Symbol{
			Lit:  lit,
			Next: uint32(l.Next.Lit()),
			Name: a.Symbols[l.Input],
		}
		if e, known := l.Init.Edge(); known {
			sym.Reset = uint32(e.Lit())
		} else {
			sym.Reset = lit
		}
		raw.Latches = append(raw.Latches, sym)
	}
	exportEdges := func(edges []Edge) []aiger.Symbol {
		out := make([]aiger.Symbol, 0, len(edges))
		for _, e := range edges {
			out = append(out, aiger.Symbol{
				Lit:  uint32(e.Lit()),
				Name: a.Symbols[e.NodeID()],
			})
		}

		return out
	}
	raw.Outputs = exportEdges(a.Outputs)
	raw.Bads = exportEdges(a.Bads)
	raw.Constraints = exportEdges(a.Constraints)
	raw.Fairness = exportEdges(a.Fairness)
	for _, j := range a.Justice {
		sym := aiger.Symbol{Lits: make([]uint32, 0, len(j))}
		for _, e := range j {
			sym.Lits = append(sym.Lits, uint32(e.Lit()))
		}
		raw.Justice = append(raw.Justice, sym)
	}
	for id := 1; id < a.NumNodes(); id++ {
		if !a.nodes[id].IsAnd() {
			continue
		}
		raw.Ands = append(raw.Ands, aiger.And{
			LHS:  uint32(EdgeTo(id).Lit()),
			RHS0: uint32(a.nodes[id].fanin1.Lit()),
			RHS1: uint32(a.nodes[id].fanin0.Lit()),
		})
	}

	return raw
}

// roleOrdered reports whether the arena already follows the canonical
// layout: inputs at 1..I, latch inputs next, AND gates after.
func (a *Aig) roleOrdered() bool {
	next := 1
	for _, input := range a.Inputs {
		if input != next {
			return false
		}
		next++
	}
	for _, l := range a.Latches {
		if l.Input != next {
			return false
		}
		next++
	}
	for id := next; id < a.NumNodes(); id++ {
		if !a.nodes[id].IsAnd() {
			return false
		}
	}

	return true
}
