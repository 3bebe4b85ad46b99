package clip

import (
	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// maxVertices is the worst-case vertex count after clipping a triangle
// against all six half-spaces of an AABB (spec.md §4.H: "9 in the worst
// case"). Callers reserve a little more for safety.
const maxVertices = 9

// reserveVertices is the scratch-buffer capacity clip allocates up
// front, matching spec.md §4.H's "callers reserve 18 for safety".
const reserveVertices = 18

// side selects which face of a half-space a clip step tests against.
type side uint8

const (
	low side = iota
	high
)

// halfSpace is one of the six clipping planes derived from an AABB: an
// axis, a distance, and which side of that plane is "inside".
type halfSpace struct {
	axis     vecmath.Axis
	distance float32
	side     side
}

// halfSpaces returns the six half-spaces of b in the fixed order
// X-low, X-high, Y-low, Y-high, Z-low, Z-high. This order is significant:
// it is what produces the exact vertex sequences of spec.md scenarios
// S5/S6, and changing it would still be a correct clip but a different
// (non-conforming) output ordering.
func halfSpaces(b aabb.AABB) [6]halfSpace {
	return [6]halfSpace{
		{vecmath.X, b.Min.X, low},
		{vecmath.X, b.Max.X, high},
		{vecmath.Y, b.Min.Y, low},
		{vecmath.Y, b.Max.Y, high},
		{vecmath.Z, b.Min.Z, low},
		{vecmath.Z, b.Max.Z, high},
	}
}

// inside reports whether p lies on the "inside" side of hs.
func (hs halfSpace) inside(p vecmath.Vec3) bool {
	c := p.Get(hs.axis)
	if hs.side == low {
		return c >= hs.distance
	}

	return c <= hs.distance
}

// intersect returns the point where segment a->b crosses hs's plane,
// using the bounded t in [0,1] form (the edge is a finite segment, not
// a ray — spec.md §9 Open Questions reserves the unrestricted form for
// traversal only). ok is false if the edge is parallel to the plane.
func (hs halfSpace) intersect(a, b vecmath.Vec3) (vecmath.Vec3, bool) {
	direction := b.Sub(a)
	d := direction.Get(hs.axis)
	if d == 0 {
		return vecmath.Vec3{}, false
	}

	t := (hs.distance - a.Get(hs.axis)) / d
	if t < 0 || t > 1 {
		return vecmath.Vec3{}, false
	}

	return a.Add(direction.Scale(t)), true
}

// Clip clips t against box using Sutherland–Hodgman, returning the
// surviving convex polygon (at most 9 vertices) or an empty slice if t
// lies entirely outside box. The output is seeded [v1, v2, v0] (spec.md
// §9) and every vertex is clamped into box before being kept.
func Clip(t triangle.Triangle, box aabb.AABB) []vecmath.Vec3 {
	poly := make([]vecmath.Vec3, 0, reserveVertices)
	poly = append(poly, t.V1, t.V2, t.V0)

	scratch := make([]vecmath.Vec3, 0, reserveVertices)
	for _, hs := range halfSpaces(box) {
		if len(poly) == 0 {
			break
		}

		scratch = append(scratch[:0], poly...)
		poly = poly[:0]
		n := len(scratch)
		for i := 0; i < n; i++ {
			a := scratch[(i+n-1)%n]
			b := scratch[i]

			aIn := hs.inside(a)
			bIn := hs.inside(b)

			switch {
			case bIn && !aIn:
				if p, ok := hs.intersect(a, b); ok {
					poly = append(poly, box.Clamp(p))
				}
				poly = append(poly, b)
			case bIn:
				poly = append(poly, b)
			case aIn:
				if p, ok := hs.intersect(a, b); ok {
					poly = append(poly, box.Clamp(p))
				}
			}
		}
	}

	if len(poly) > maxVertices {
		// Should be unreachable for a triangle clipped by six planes;
		// guard defensively rather than silently overrun a caller's
		// fixed-size buffer.
		poly = poly[:maxVertices]
	}

	return poly
}

// BBox folds Inf/Sup over a clipped polygon to derive its tight AABB —
// the bounding box the builder actually uses for split candidates and
// child cell boundaries (spec.md §4.H "Derived tight AABB"), as opposed
// to the triangle's raw, unclipped bbox.
func BBox(poly []vecmath.Vec3) (aabb.AABB, bool) {
	if len(poly) == 0 {
		return aabb.AABB{}, false
	}

	return aabb.FromPoints(poly), true
}
