package satbox

import (
	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// Overlaps reports whether t and b overlap, using the separating-axis
// theorem. It is used to assert the clipper's post-condition: every
// triangle the builder keeps in a cell must genuinely overlap that
// cell's boundary.
func Overlaps(t triangle.Triangle, b aabb.AABB) bool {
	center := b.Min.Add(b.Max).Scale(0.5)
	halfSize := b.Max.Sub(b.Min).Scale(0.5)

	v0 := t.V0.Sub(center)
	v1 := t.V1.Sub(center)
	v2 := t.V2.Sub(center)

	// 1. Box face normals: equivalent to an AABB-vs-AABB overlap of the
	// triangle's own bbox (recentered) against the box.
	triBBox := aabb.FromPoints([]vecmath.Vec3{v0, v1, v2})
	negHalf := vecmath.New(-halfSize.X, -halfSize.Y, -halfSize.Z)
	if !boxesOverlap(triBBox.Min, triBBox.Max, negHalf, halfSize) {
		return false
	}

	// 2. Triangle face normal: project the box onto the triangle's
	// normal and check the triangle's own plane distance falls inside.
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	normal := e0.Cross(e1)
	if !planeOverlapsBox(normal, v0, halfSize) {
		return false
	}

	// 3. Nine cross-product axes: box axis × triangle edge.
	e2 := v0.Sub(v2)
	edges := [3]vecmath.Vec3{e0, e1, e2}
	axes := [3]vecmath.Vec3{vecmath.New(1, 0, 0), vecmath.New(0, 1, 0), vecmath.New(0, 0, 1)}
	verts := [3]vecmath.Vec3{v0, v1, v2}

	for _, axis := range axes {
		for _, edge := range edges {
			sep := axis.Cross(edge)
			if sep == (vecmath.Vec3{}) {
				continue // degenerate axis (edge parallel to axis)
			}
			if !axisSeparates(sep, verts, halfSize) {
				return false
			}
		}
	}

	return true
}

func boxesOverlap(aMin, aMax, bMin, bMax vecmath.Vec3) bool {
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}

func planeOverlapsBox(normal, point, halfSize vecmath.Vec3) bool {
	var vMin, vMax vecmath.Vec3
	for _, a := range [...]vecmath.Axis{vecmath.X, vecmath.Y, vecmath.Z} {
		if normal.Get(a) > 0 {
			vMin = vMin.With(a, -halfSize.Get(a))
			vMax = vMax.With(a, halfSize.Get(a))
		} else {
			vMin = vMin.With(a, halfSize.Get(a))
			vMax = vMax.With(a, -halfSize.Get(a))
		}
	}

	d := normal.Dot(point)
	if normal.Dot(vMin)+d > 0 {
		return false
	}

	return normal.Dot(vMax)+d >= 0
}

// axisSeparates projects the three recentered triangle vertices and the
// box's half-extent onto axis, returning false if axis is a separating
// axis (no overlap), true otherwise.
func axisSeparates(axis vecmath.Vec3, verts [3]vecmath.Vec3, halfSize vecmath.Vec3) bool {
	p0 := verts[0].Dot(axis)
	p1 := verts[1].Dot(axis)
	p2 := verts[2].Dot(axis)

	triMin, triMax := p0, p0
	for _, p := range [...]float32{p1, p2} {
		if p < triMin {
			triMin = p
		}
		if p > triMax {
			triMax = p
		}
	}

	r := halfSize.X*abs32(axis.X) + halfSize.Y*abs32(axis.Y) + halfSize.Z*abs32(axis.Z)

	return triMin <= r && triMax >= -r
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}
