package kdtree

import "github.com/katalvlaran/kdtrace/aap"

// Node is a tagged k-d tree node (spec.md §4.L / §3 KdNode): either a
// leaf carrying triangle indices, or an internal node carrying a
// splitting plane and two owned children. The tree is a pure owning
// tree — Left and Right are nil on a leaf, Indices is nil on an
// internal node.
//
// Node pointers are stable for the lifetime of the tree: traversal
// holds onto *Node values across loop iterations and stack frames, so
// Build never relocates a node after constructing it.
type Node struct {
	Leaf    bool
	Indices []uint32

	Plane aap.AAP
	Left  *Node
	Right *Node
}

// leafNode builds a Leaf node from indices. A nil/empty indices is a
// legal leaf (spec.md §3 — an empty leaf is the whole tree for an
// empty triangle list, and appears internally wherever a cut carves off
// empty space).
func leafNode(indices []uint32) *Node {
	return &Node{Leaf: true, Indices: indices}
}

// internalNode builds an Internal node. Per spec.md §3's KdNode
// invariant, Build never constructs one whose Left and Right are both
// empty leaves — such a node strictly worsens cost versus a single
// empty leaf, and the SAH termination rule (§4.J) already rejects any
// split that fails to improve on leafCost, which an all-empty split
// never does for a non-empty parent.
func internalNode(plane aap.AAP, left, right *Node) *Node {
	return &Node{Plane: plane, Left: left, Right: right}
}
