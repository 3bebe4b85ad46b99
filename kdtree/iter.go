package kdtree

import "iter"

// Nodes walks tree depth-first, left before right, yielding every node
// including internal ones (spec.md §6 iter_nodes — "diagnostics").
// Range-over-func lets callers break out early without an explicit
// stack.
func Nodes(tree *Tree) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool
		walk = func(n *Node) bool {
			if n == nil {
				return true
			}
			if !yield(n) {
				return false
			}
			if n.Leaf {
				return true
			}

			return walk(n.Left) && walk(n.Right)
		}
		walk(tree.Root)
	}
}

// CountNodes returns the total number of nodes (leaf and internal) in
// tree (spec.md §6 count_nodes).
func CountNodes(tree *Tree) int {
	n := 0
	for range Nodes(tree) {
		n++
	}

	return n
}

// CountGeometries returns the total number of (leaf, index) pairs
// across the tree — a triangle referenced from k leaves counts k times
// (spec.md §6 count_geometries; spec.md §9 notes a straddling triangle
// is not deduplicated at build time, and this statistic reflects that).
func CountGeometries(tree *Tree) int {
	n := 0
	for node := range Nodes(tree) {
		if node.Leaf {
			n += len(node.Indices)
		}
	}

	return n
}
