package aabb

import (
	"github.com/katalvlaran/kdtrace/aap"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// AABB is an axis-aligned box (Min, Max), with the invariant Min ≤ Max
// componentwise.
type AABB struct {
	Min, Max vecmath.Vec3
}

// Empty is the AABB with Min == Max == the origin; it has zero surface
// area and zero volume. FromPoints returns it for no points, and a tree
// built from no triangles keeps it as its Boundary; a tree built from
// one or more triangles never has it as a cell boundary, since the root
// is enlarged by a margin (spec.md §3's KdCell invariant).
var Empty = AABB{}

// New constructs an AABB from two corners, normalizing componentwise so
// that Min ≤ Max regardless of the order the caller supplies them in.
func New(a, b vecmath.Vec3) AABB {
	return AABB{Min: vecmath.Inf(a, b), Max: vecmath.Sup(a, b)}
}

// Size returns Max - Min, the box's extent along each axis.
func (b AABB) Size() vecmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total area of the box's six faces:
// 2*(x*y + x*z + y*z) where (x,y,z) = Size().
func (b AABB) SurfaceArea() float32 {
	s := b.Size()

	return 2 * (s.X*s.Y + s.X*s.Z + s.Y*s.Z)
}

// Volume returns x*y*z where (x,y,z) = Size().
func (b AABB) Volume() float32 {
	s := b.Size()

	return s.X * s.Y * s.Z
}

// IsEmpty reports whether the box has degenerated to a single point
// (Min == Max componentwise).
func (b AABB) IsEmpty() bool {
	return b.Min == b.Max
}

// IsFlat reports whether the box has zero extent along axis a, i.e. the
// box is a planar slab rather than a solid. A flat cell with at least
// one triangle in it is a legal leaf (spec.md §4.M).
func (b AABB) IsFlat(a vecmath.Axis) bool {
	return b.Min.Get(a) == b.Max.Get(a)
}

// Contains reports whether p lies inside b, componentwise, inclusive of
// the boundary. Used by the clipper's post-condition (spec.md §8
// invariant 2) and by test oracles.
func (b AABB) Contains(p vecmath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Clamp returns p clamped componentwise into b. This is the defensive
// operation the clipper applies to every emitted vertex (spec.md §4.H,
// §7): accumulated float error in the parametric intersection formula
// can otherwise push a vertex slightly outside b on an axis orthogonal
// to the clipping plane.
func (b AABB) Clamp(p vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Clamp(p, b.Min, b.Max)
}

// Enlarge grows b outward by delta/2 on every face (delta added to the
// total extent along each axis). Used once at build time to derive the
// root cell from the raw triangle bounding box, so that all
// face-coplanar geometry ends up strictly interior to the root
// (spec.md §4.K).
func (b AABB) Enlarge(delta vecmath.Vec3) AABB {
	half := delta.Scale(0.5)

	return AABB{Min: b.Min.Sub(half), Max: b.Max.Add(half)}
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: vecmath.Inf(b.Min, o.Min), Max: vecmath.Sup(b.Max, o.Max)}
}

// Split partitions b at plane into a "low" box (sharing b's Min face)
// and a "high" box (sharing b's Max face). The caller must ensure
// plane.Distance lies within [b.Min[axis], b.Max[axis]]; Split does not
// validate this (it is always called with a candidate plane already
// derived from clipped extents inside that range — spec.md §4.C).
func (b AABB) Split(plane aap.AAP) (lo, hi AABB) {
	lo, hi = b, b
	lo.Max = lo.Max.With(plane.Axis, plane.Distance)
	hi.Min = hi.Min.With(plane.Axis, plane.Distance)

	return lo, hi
}

// FromPoints folds Inf/Sup over points to build the tightest AABB
// containing them all. Returns Empty if points is empty.
func FromPoints(points []vecmath.Vec3) AABB {
	if len(points) == 0 {
		return Empty
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = vecmath.Inf(lo, p)
		hi = vecmath.Sup(hi, p)
	}

	return AABB{Min: lo, Max: hi}
}
