package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// TestIntersectAxiallyAlignedTriangle reproduces spec.md scenario S2:
// a unit triangle in the z=1 plane, hit by a ray straight down the
// z axis, and again by the reversed ray.
func TestIntersectAxiallyAlignedTriangle(t *testing.T) {
	tri := triangle.New(
		vecmath.New(0, 0, 1),
		vecmath.New(1, 0, 1),
		vecmath.New(0, 1, 1),
	)
	r := ray.New(vecmath.New(0, 0, 0), vecmath.New(0, 0, 2))

	hit, ok := triangle.Intersect(tri, r)
	assert.True(t, ok)
	assert.InDelta(t, float32(0.5), hit.T, 1e-6)
	assert.InDelta(t, float32(0), hit.U, 1e-5)
	assert.InDelta(t, float32(0), hit.V, 1e-5)

	hitRev, ok := triangle.Intersect(tri, r.Reversed())
	assert.True(t, ok)
	assert.InDelta(t, float32(0.5), hitRev.T, 1e-6)
}

func TestIntersectMiss(t *testing.T) {
	tri := triangle.New(
		vecmath.New(0, 0, 0),
		vecmath.New(1, 0, 0),
		vecmath.New(0, 1, 0),
	)
	r := ray.New(vecmath.New(10, 10, -1), vecmath.New(0, 0, 2))

	_, ok := triangle.Intersect(tri, r)
	assert.False(t, ok)
}

func TestIntersectParallelRay(t *testing.T) {
	tri := triangle.New(
		vecmath.New(0, 0, 0),
		vecmath.New(1, 0, 0),
		vecmath.New(0, 1, 0),
	)
	r := ray.New(vecmath.New(0, 0, 1), vecmath.New(1, 0, 0))

	_, ok := triangle.Intersect(tri, r)
	assert.False(t, ok)
}

func TestAxiallyAligned(t *testing.T) {
	tri := triangle.New(
		vecmath.New(0, 0, 5),
		vecmath.New(1, 0, 5),
		vecmath.New(0, 1, 5),
	)

	axis, distance, ok := tri.AxiallyAligned()
	assert.True(t, ok)
	assert.Equal(t, vecmath.Z, axis)
	assert.Equal(t, float32(5), distance)

	notAxial := triangle.New(vecmath.New(0, 0, 0), vecmath.New(1, 0, 1), vecmath.New(0, 1, 2))
	_, _, ok = notAxial.AxiallyAligned()
	assert.False(t, ok)
}

// TestAxialTriangleMatchesGeneralPath checks that the public
// triangle.Intersect entry point and AxialTriangle.Intersect agree for
// an axially aligned triangle, including a coplanar ray. Intersect
// dispatches such a triangle to AxialTriangle.Intersect, so this covers
// the dispatch; the unexported Möller–Trumbore routine both paths end in
// is not called directly from this package-external test.
func TestAxialTriangleMatchesGeneralPath(t *testing.T) {
	tri := triangle.New(
		vecmath.New(0, 0, 1),
		vecmath.New(1, 0, 1),
		vecmath.New(0, 1, 1),
	)
	axial, ok := tri.Axial()
	assert.True(t, ok)

	rays := []ray.Ray{
		ray.New(vecmath.New(0.2, 0.2, -1), vecmath.New(0, 0, 3)),
		ray.New(vecmath.New(5, 5, -1), vecmath.New(0, 0, 3)),
		ray.New(vecmath.New(0, 0, 1), vecmath.New(1, 0, 0)), // coplanar
	}

	for _, r := range rays {
		general, generalOK := triangle.Intersect(tri, r)
		fast, fastOK := axial.Intersect(r)
		assert.Equal(t, generalOK, fastOK)
		if generalOK {
			assert.Equal(t, general, fast)
		}
	}
}
