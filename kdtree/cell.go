package kdtree

import (
	"github.com/katalvlaran/kdtrace/aabb"
)

// cell is the build-time unit of recursion: a boundary AABB together
// with the indices of the triangles (into the tree's shared Triangles
// slice) currently thought to overlap it (spec.md §3 KdCell).
//
// Invariant: boundary.SurfaceArea() > 0 whenever len(indices) == 0 would
// make it a leaf — a degenerate zero-surface-area cell can never be hit
// by a ray, so the builder never emits one as a standalone leaf; and a
// flat cell (zero volume) is only a legal leaf if indices is non-empty
// (spec.md §3).
type cell struct {
	boundary aabb.AABB
	indices  []uint32
}
