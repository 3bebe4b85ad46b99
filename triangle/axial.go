package triangle

import (
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// AxialTriangle tags a Triangle known to lie entirely within a single
// AAP (all three vertices share one axis coordinate). Intersection
// special-cases these: it can short-circuit on the plane distance
// before running the general 3D test (spec.md §9 "Axial-aligned
// triangle specialization"). The builder and the clipper do not use
// AxialTriangle; they treat every triangle the same way.
type AxialTriangle struct {
	Triangle
	Axis     vecmath.Axis
	Distance float32
}

// Axial returns t tagged as an AxialTriangle if AxiallyAligned holds.
func (t Triangle) Axial() (AxialTriangle, bool) {
	axis, distance, ok := t.AxiallyAligned()
	if !ok {
		return AxialTriangle{}, false
	}

	return AxialTriangle{Triangle: t, Axis: axis, Distance: distance}, true
}

// Intersect runs the fast path for an axially-aligned triangle: reject
// rays that do not cross the triangle's plane before paying for the
// full Möller–Trumbore determinant, then defer to the same general
// routine for the (t, u, v) computation. This keeps the fast path
// provably bit-identical to the general path (spec.md §9 requires no
// change in results beyond permissible float error) while skipping the
// 3x3 cross-product work for rays that plainly miss the plane.
func (a AxialTriangle) Intersect(r ray.Ray) (Hit, bool) {
	d := r.Direction.Get(a.Axis)
	o := r.Origin.Get(a.Axis)
	if d == 0 && o != a.Distance {
		// Ray is parallel to the triangle's plane and not embedded in
		// it: a definite miss, cheaper than running MT's determinant
		// test to discover the same thing.
		return Hit{}, false
	}

	// Any other case (including the coplanar d==0, o==Distance case,
	// and every non-parallel ray) defers to the general routine so the
	// fast path never diverges from it in (t, u, v).
	return mollerTrumbore(a.Triangle, r)
}
