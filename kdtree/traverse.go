package kdtree

import (
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
)

// Result is a successful Intersect outcome: the index of the hit
// triangle into Tree.Triangles and its Möller–Trumbore (t, u, v).
type Result struct {
	Index uint32
	Hit   triangle.Hit
}

// frame is a deferred subtree with its own entry/exit ray parameters,
// pushed when an internal node's near child is visited before its far
// child (spec.md §4.M step 6).
type frame struct {
	node   *Node
	t1, t2 float32
}

// stackFrames bounds the traversal stack to hardMaxDepth entries, sized
// for the deepest tree Build can ever produce (spec.md §5 "fixed-
// capacity stack ... 20-30 frames"); traversal never allocates.
type stackFrames [hardMaxDepth]frame

// Intersect returns the closest triangle Tree hit by r with parameter t
// in [tRange[0], tRange[1]], or ok=false if none (spec.md §4.M / §6).
// On a t-tie between triangles in different leaves, the first one
// encountered by traversal wins (spec.md §9).
func Intersect(tree *Tree, r ray.Ray, tRange [2]float32) (Result, bool) {
	var stack stackFrames
	sp := 0

	node := tree.Root
	t1, t2 := tRange[0], tRange[1]

	for {
		if node.Leaf {
			if res, ok := intersectLeaf(tree, node, r, t1, t2); ok {
				return res, true
			}

			if sp == 0 {
				return Result{}, false
			}
			sp--
			f := stack[sp]
			node, t1, t2 = f.node, f.t1, f.t2

			continue
		}

		axis := node.Plane.Axis
		d := node.Plane.Distance

		near, far := node.Left, node.Right
		if r.Direction.Get(axis) < 0 {
			near, far = node.Right, node.Left
		}

		tPlane, ok := node.Plane.IntersectRay(r)
		if !ok {
			// Ray parallel to the plane: the whole segment lies on one
			// side, determined by the ray's origin alone.
			if r.Origin.Get(axis) <= d {
				node = node.Left
			} else {
				node = node.Right
			}

			continue
		}

		switch {
		case tPlane > t2:
			node = near
		case tPlane < t1:
			node = far
		default:
			stack[sp] = frame{node: far, t1: tPlane, t2: t2}
			sp++
			node, t2 = near, tPlane
		}
	}
}

// intersectLeaf brute-forces every indexed triangle and keeps the
// minimum-t hit within [t1, t2] (spec.md §4.M "Leaf").
func intersectLeaf(tree *Tree, node *Node, r ray.Ray, t1, t2 float32) (Result, bool) {
	best := Result{}
	found := false

	for _, idx := range node.Indices {
		hit, ok := triangle.Intersect(tree.Triangles[idx], r)
		if !ok || hit.T < t1 || hit.T > t2 {
			continue
		}
		if !found || hit.T < best.Hit.T {
			best = Result{Index: idx, Hit: hit}
			found = true
		}
	}

	return best, found
}
