package clip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/clip"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// TestClipFullyEnclosed reproduces spec.md scenario S5: a triangle
// wholly inside the clipping box returns exactly its three vertices in
// the seeded order [v1, v2, v0].
func TestClipFullyEnclosed(t *testing.T) {
	tri := triangle.New(vecmath.New(1, 1, 1), vecmath.New(2, 1, 1), vecmath.New(2, 2, 1))
	box := aabb.New(vecmath.New(0, 0, 0), vecmath.New(3, 3, 3))

	got := clip.Clip(tri, box)
	want := []vecmath.Vec3{
		vecmath.New(2, 1, 1),
		vecmath.New(2, 2, 1),
		vecmath.New(1, 1, 1),
	}
	assert.Equal(t, want, got)
}

// TestClipAllEdgesIntersecting reproduces spec.md scenario S6.
func TestClipAllEdgesIntersecting(t *testing.T) {
	tri := triangle.New(vecmath.New(0, 0, 0), vecmath.New(12, 0, 0), vecmath.New(6, 6, 0))
	box := aabb.New(vecmath.New(2, -1, 0), vecmath.New(10, 4, 0))

	got := clip.Clip(tri, box)
	want := []vecmath.Vec3{
		vecmath.New(2, 0, 0),
		vecmath.New(10, 0, 0),
		vecmath.New(10, 2, 0),
		vecmath.New(8, 4, 0),
		vecmath.New(4, 4, 0),
		vecmath.New(2, 2, 0),
	}
	assert.Equal(t, want, got)
}

// TestClipClampsHistoricalBug reproduces spec.md scenario S8: every
// emitted vertex must satisfy box.Contains after clamping, even though
// unclamped float arithmetic would push one vertex ~1e-7 outside it.
func TestClipClampsHistoricalBug(t *testing.T) {
	tri := triangle.New(vecmath.New(-1, -1, -1), vecmath.New(-1, -1, 1), vecmath.New(1, -1, -1))
	box := aabb.New(vecmath.New(-1.5, -1.5012, -1.5), vecmath.New(-0.076, 1.5, 1.0))

	got := clip.Clip(tri, box)
	for _, v := range got {
		assert.True(t, box.Contains(v), "vertex %+v escaped box %+v", v, box)
	}
}

func TestClipEntirelyOutside(t *testing.T) {
	tri := triangle.New(vecmath.New(100, 100, 100), vecmath.New(101, 100, 100), vecmath.New(100, 101, 100))
	box := aabb.New(vecmath.New(0, 0, 0), vecmath.New(1, 1, 1))

	got := clip.Clip(tri, box)
	assert.Empty(t, got)
}

func TestBBoxOfClippedPolygon(t *testing.T) {
	tri := triangle.New(vecmath.New(0, 0, 0), vecmath.New(12, 0, 0), vecmath.New(6, 6, 0))
	box := aabb.New(vecmath.New(2, -1, 0), vecmath.New(10, 4, 0))

	poly := clip.Clip(tri, box)
	bbox, ok := clip.BBox(poly)
	assert.True(t, ok)
	assert.Equal(t, vecmath.New(2, 0, 0), bbox.Min)
	assert.Equal(t, vecmath.New(10, 4, 0), bbox.Max)

	_, ok = clip.BBox(nil)
	assert.False(t, ok)
}

// TestClipIdempotentRebuild checks that clipping is a pure function of
// its inputs: repeated calls with the same triangle and box produce the
// identical vertex sequence (spec.md §8 round-trip property).
func TestClipIdempotentRebuild(t *testing.T) {
	tri := triangle.New(vecmath.New(0, 0, 0), vecmath.New(12, 0, 0), vecmath.New(6, 6, 0))
	box := aabb.New(vecmath.New(2, -1, 0), vecmath.New(10, 4, 0))

	first := clip.Clip(tri, box)
	second := clip.Clip(tri, box)
	assert.Equal(t, first, second)
}
