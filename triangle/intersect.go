package triangle

import (
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// epsilon guards the Möller–Trumbore determinant test against triangles
// that are (numerically) edge-on to the ray, where the division below
// would otherwise blow up or return a meaningless u/v.
const epsilon = 1e-7

// Hit is the result of a successful ray/triangle intersection: the ray
// parameter t and the Möller–Trumbore barycentric coordinates (u, v).
// The third barycentric weight is 1 - u - v.
type Hit struct {
	T, U, V float32
}

// Intersect runs Möller–Trumbore against t and r, returning ok=false if
// the ray is parallel to the triangle's plane (including the coplanar
// case) or if the intersection point falls outside the triangle. It
// does not restrict t to any range; callers (kdtree traversal,
// kdtreetester) apply their own [t1, t2] bound.
//
// Triangles detected as axially aligned (spec.md §9 "Axis-aligned
// triangle specialization") are dispatched through AxialTriangle's
// cheaper parallel-ray reject before paying for the full determinant
// test below.
func Intersect(t Triangle, r ray.Ray) (Hit, bool) {
	if axial, ok := t.Axial(); ok {
		return axial.Intersect(r)
	}

	return mollerTrumbore(t, r)
}

// mollerTrumbore is the general-case algorithm, shared by Intersect and
// AxialTriangle.Intersect's fallback so the axial fast path can never
// diverge from the general one in (t, u, v).
func mollerTrumbore(t Triangle, r ray.Ray) (hit Hit, ok bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		// Ray is parallel to the triangle's plane (or the triangle is
		// degenerate); Möller–Trumbore cannot resolve this case.
		return Hit{}, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	tHit := edge2.Dot(qvec) * invDet

	return Hit{T: tHit, U: u, V: v}, true
}

// Point evaluates the triangle at barycentric coordinates (u, v):
// (1-u-v)*V0 + u*V1 + v*V2.
func (t Triangle) Point(u, v float32) vecmath.Vec3 {
	w := 1 - u - v

	return t.V0.Scale(w).Add(t.V1.Scale(u)).Add(t.V2.Scale(v))
}
