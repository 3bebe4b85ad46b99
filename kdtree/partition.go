package kdtree

import (
	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/aap"
	"github.com/katalvlaran/kdtrace/clip"
	"github.com/katalvlaran/kdtrace/triangle"
)

// clippedTriangle pairs a triangle's original index with its tight
// bounding box after clipping to the current cell (spec.md §4.H
// "Derived tight AABB"). All split-plane candidates and partition
// decisions are derived from box, never from the triangle's raw bbox.
type clippedTriangle struct {
	index uint32
	box   aabb.AABB
}

// clipToCell clips every indexed triangle to boundary, dropping any
// whose clip is empty (the triangle lies entirely outside the cell —
// spec.md §4.H "Failure").
func clipToCell(triangles []triangle.Triangle, indices []uint32, boundary aabb.AABB) []clippedTriangle {
	out := make([]clippedTriangle, 0, len(indices))
	for _, idx := range indices {
		poly := clip.Clip(triangles[idx], boundary)
		box, ok := clip.BBox(poly)
		if !ok {
			continue
		}
		out = append(out, clippedTriangle{index: idx, box: box})
	}

	return out
}

// partition splits clipped around plane into three index groups
// (spec.md §4.I):
//
//   - left:   clipped AABB has Min[axis] < plane.Distance
//   - right:  clipped AABB has Max[axis] > plane.Distance
//   - planar: clipped AABB is flat on the plane (Min==Max==Distance)
//
// A triangle straddling the plane appears in both left and right.
// Planar triangles are reported separately; the builder merges them
// into both children (the conservative policy spec.md §4.I permits as
// an alternative to the alternative "place on lower-cost side").
func partition(clipped []clippedTriangle, plane aap.AAP) (left, right, planar []uint32) {
	for _, c := range clipped {
		lo := c.box.Min.Get(plane.Axis)
		hi := c.box.Max.Get(plane.Axis)

		if lo == plane.Distance && hi == plane.Distance {
			planar = append(planar, c.index)
			continue
		}
		if lo < plane.Distance {
			left = append(left, c.index)
		}
		if hi > plane.Distance {
			right = append(right, c.index)
		}
	}

	return left, right, planar
}
