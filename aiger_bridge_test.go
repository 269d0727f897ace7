package aig_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aig "github.com/verikit/goaig"
	"github.com/verikit/goaig/aiger"
)

// sampleCircuit builds a small sequential circuit exercising all three
// reset encodings and a symbol.
func sampleCircuit() *aig.Aig {
	g := aig.New()
	in := aig.EdgeTo(g.NewInput())
	lx := g.NewLatch(aig.ConstEdge(false), aig.InitX())
	l1 := g.NewLatch(in, aig.InitConst(true))
	gated := g.NewLatch(in.Not(), aig.InitEdge(in))
	next := g.NewAnd(in, aig.EdgeTo(lx))
	g.Latches[0].Next = next
	g.Bads = append(g.Bads, next.Not())
	g.Outputs = append(g.Outputs, aig.EdgeTo(l1))
	g.SetSymbol(in.NodeID(), "tick")
	_ = gated

	return g
}

// TestFromAiger_ImportsRoles verifies the importer materializes the
// arena and role lists from a raw structure.
func TestFromAiger_ImportsRoles(t *testing.T) {
	raw := &aiger.Aiger{
		MaxVar:      4,
		Inputs:      []aiger.Symbol{{Lit: 2, Name: "a"}, {Lit: 4}},
		Latches:     []aiger.Symbol{{Lit: 6, Next: 8, Reset: 6}},
		Bads:        []aiger.Symbol{{Lit: 9}},
		Constraints: []aiger.Symbol{{Lit: 2}},
		Ands:        []aiger.And{{LHS: 8, RHS0: 4, RHS1: 2}},
	}

	g, err := aig.FromAiger(raw)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, []int{1, 2}, g.Inputs)
	require.Len(t, g.Latches, 1)
	assert.Equal(t, 3, g.Latches[0].Input)
	assert.Equal(t, aig.EdgeTo(4), g.Latches[0].Next)
	assert.True(t, g.Latches[0].Init.IsX(), "self reset literal means undefined")
	require.Len(t, g.Bads, 1)
	assert.Equal(t, aig.NewEdge(4, true), g.Bads[0])
	require.True(t, g.Node(4).IsAnd())
	name, ok := g.Symbol(1)
	require.True(t, ok)
	assert.Equal(t, "a", name)
}

// TestFromAiger_ResetEncodings maps 0, 1, self, and a gated literal to
// the four Init shapes.
func TestFromAiger_ResetEncodings(t *testing.T) {
	raw := &aiger.Aiger{
		MaxVar: 5,
		Inputs: []aiger.Symbol{{Lit: 2}},
		Latches: []aiger.Symbol{
			{Lit: 4, Next: 2, Reset: 0},
			{Lit: 6, Next: 2, Reset: 1},
			{Lit: 8, Next: 2, Reset: 8},
			{Lit: 10, Next: 2, Reset: 3},
		},
	}

	g, err := aig.FromAiger(raw)
	require.NoError(t, err)
	require.Len(t, g.Latches, 4)

	v, known := g.Latches[0].Init.Const()
	assert.True(t, known)
	assert.False(t, v)
	v, known = g.Latches[1].Init.Const()
	assert.True(t, known && v)
	assert.True(t, g.Latches[2].Init.IsX())
	require.True(t, g.Latches[3].Init.IsGated())
	e, _ := g.Latches[3].Init.Edge()
	assert.Equal(t, aig.NewEdge(1, true), e)
}

// TestFromAiger_Rejects covers structural violations: out-of-arena
// literals and colliding or missing definitions.
func TestFromAiger_Rejects(t *testing.T) {
	for name, raw := range map[string]*aiger.Aiger{
		"gate collides with input": {
			MaxVar: 1,
			Inputs: []aiger.Symbol{{Lit: 2}},
			Ands:   []aiger.And{{LHS: 2, RHS0: 0, RHS1: 0}},
		},
		"edge outside arena": {
			MaxVar:  9,
			Inputs:  []aiger.Symbol{{Lit: 2}},
			Outputs: []aiger.Symbol{{Lit: 18}},
		},
		"undefined node": {
			MaxVar: 2,
			Inputs: []aiger.Symbol{{Lit: 4}},
		},
	} {
		_, err := aig.FromAiger(raw)
		assert.ErrorIs(t, err, aig.ErrModel, name)
	}
}

// TestRoundTrip_ASCIIFile writes .aag and reads it back unchanged.
func TestRoundTrip_ASCIIFile(t *testing.T) {
	g := sampleCircuit()
	path := filepath.Join(t.TempDir(), "sample.aag")
	require.NoError(t, g.WriteFile(path))

	back, err := aig.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(g.ToAiger(), back.ToAiger(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ascii file round trip drifted (-wrote +read):\n%s", diff)
	}
}

// TestRoundTrip_BinaryFile writes .aig and verifies the read-back matches
// the re-encoded (canonical layout) graph structure for structure.
func TestRoundTrip_BinaryFile(t *testing.T) {
	g := sampleCircuit()
	path := filepath.Join(t.TempDir(), "sample.aig")
	require.NoError(t, g.WriteFile(path))

	back, err := aig.ReadFile(path)
	require.NoError(t, err)

	packed := g.Reencode()
	if diff := cmp.Diff(packed.ToAiger(), back.ToAiger(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("binary file round trip drifted (-wrote +read):\n%s", diff)
	}
}

// TestRoundTrip_GzipASCII covers the .aag.gz path end to end.
func TestRoundTrip_GzipASCII(t *testing.T) {
	g := sampleCircuit()
	path := filepath.Join(t.TempDir(), "sample.aag.gz")
	require.NoError(t, g.WriteFile(path))

	back, err := aig.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(g.ToAiger(), back.ToAiger(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("gzip round trip drifted (-wrote +read):\n%s", diff)
	}
}

// TestReadFile_MissingPath reports the offending path.
func TestReadFile_MissingPath(t *testing.T) {
	_, err := aig.ReadFile("/does/not/exist.aag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/does/not/exist.aag")
}
