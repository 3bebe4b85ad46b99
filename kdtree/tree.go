package kdtree

import (
	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/triangle"
)

// Tree is an immutable k-d tree over Triangles, addressed by leaf index
// lists into that slice (spec.md §3 KdTree). Once Build returns a Tree,
// neither the tree nor Triangles is mutated; concurrent Intersect calls
// over the same Tree require no synchronization.
type Tree struct {
	Root       *Node
	Triangles  []triangle.Triangle
	Boundary   aabb.AABB
	costParams CostParams
}
