package triangle

import (
	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// Triangle is three vertices in world space. Vertex order is significant
// to downstream clipping (package clip) but not to intersection.
type Triangle struct {
	V0, V1, V2 vecmath.Vec3
}

// New constructs a Triangle from three vertices.
func New(v0, v1, v2 vecmath.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2}
}

// BBox returns the tightest AABB containing all three vertices.
func (t Triangle) BBox() aabb.AABB {
	lo := vecmath.Inf(vecmath.Inf(t.V0, t.V1), t.V2)
	hi := vecmath.Sup(vecmath.Sup(t.V0, t.V1), t.V2)

	return aabb.AABB{Min: lo, Max: hi}
}

// AxiallyAligned reports whether all three vertices share one axis
// coordinate exactly, and if so on which axis and at what distance. A
// triangle satisfying this check lies entirely within a single AAP and
// admits the faster 2D path implemented in AxialTriangle (spec.md §9).
func (t Triangle) AxiallyAligned() (axis vecmath.Axis, distance float32, ok bool) {
	for _, a := range [...]vecmath.Axis{vecmath.X, vecmath.Y, vecmath.Z} {
		c := t.V0.Get(a)
		if t.V1.Get(a) == c && t.V2.Get(a) == c {
			return a, c, true
		}
	}

	return 0, 0, false
}

// Vertices returns the triangle's three vertices as an array, in the
// declared v0, v1, v2 order.
func (t Triangle) Vertices() [3]vecmath.Vec3 {
	return [3]vecmath.Vec3{t.V0, t.V1, t.V2}
}
