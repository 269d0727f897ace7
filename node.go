package aig

import "fmt"

// nodeKind discriminates the node variants of the arena.
type nodeKind uint8

const (
	nodeFalse nodeKind = iota // the constant-false node, only at id 0
	nodeLeaf                  // primary input or latch output
	nodeAnd                   // two-input AND gate
)

// Node is one arena entry: the constant-false node, a leaf (primary input
// or latch output), or a two-input AND gate. A node's id always equals its
// index in the arena, and for AND nodes fanin0.NodeID() ≤ fanin1.NodeID().
type Node struct {
	id     int
	kind   nodeKind
	fanin0 Edge
	fanin1 Edge
}

// newAndNode builds an AND node, establishing the canonical fanin order.
func newAndNode(id int, fanin0, fanin1 Edge) Node {
	if fanin0.NodeID() > fanin1.NodeID() {
		fanin0, fanin1 = fanin1, fanin0
	}

	return Node{id: id, kind: nodeAnd, fanin0: fanin0, fanin1: fanin1}
}

// NodeID returns the node's arena id.
func (n Node) NodeID() int { return n.id }

// IsAnd reports whether the node is a two-input AND gate.
func (n Node) IsAnd() bool { return n.kind == nodeAnd }

// IsLeaf reports whether the node is a leaf (input or latch output).
func (n Node) IsLeaf() bool { return n.kind == nodeLeaf }

// IsFalse reports whether the node is the constant-false node.
func (n Node) IsFalse() bool { return n.kind == nodeFalse }

// Fanin0 returns the first fanin edge. Panics if the node is not an AND.
func (n Node) Fanin0() Edge {
	n.mustAnd()

	return n.fanin0
}

// Fanin1 returns the second fanin edge. Panics if the node is not an AND.
func (n Node) Fanin1() Edge {
	n.mustAnd()

	return n.fanin1
}

// Fanin returns both fanin edges in canonical order. Panics if the node
// is not an AND.
func (n Node) Fanin() (Edge, Edge) {
	n.mustAnd()

	return n.fanin0, n.fanin1
}

// mapID rebases the node and its fanins onto a remapped id space.
func (n Node) mapID(m func(int) int) Node {
	n.id = m(n.id)
	if n.kind == nodeAnd {
		n.fanin0 = n.fanin0.mapID(m)
		n.fanin1 = n.fanin1.mapID(m)
	}

	return n
}

func (n Node) mustAnd() {
	if n.kind != nodeAnd {
		panic(fmt.Sprintf("aig: node %d is not an AND gate", n.id))
	}
}
