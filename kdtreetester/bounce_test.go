package kdtreetester_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdtrace/kdtree"
	"github.com/katalvlaran/kdtrace/kdtreetester"
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// TestBouncerAgreesThroughoutMaxBounces runs a bounce path off a flat
// grid mesh in the z=0 plane and asserts every leg it produces agrees
// with the brute-force oracle (spec.md §8 invariant 1). The grid does
// not enclose the ray: once a bounced ray leaves the plane the tree
// reports a miss and the path ends before MaxBounces.
func TestBouncerAgreesThroughoutMaxBounces(t *testing.T) {
	tris := gridMesh(8, 8)
	tree, err := kdtree.Build(tris)
	require.NoError(t, err)

	bouncer := kdtreetester.NewBouncer(tree, 42, 5)
	start := ray.New(vecmath.New(3.5, 3.5, -5), vecmath.New(0, 0, 10))

	checks := bouncer.Bounce(start)
	require.NotEmpty(t, checks)
	for i, c := range checks {
		assert.True(t, c.Agrees(), "bounce %d disagreed: %+v", i, c)
	}
}

func TestBouncerStopsOnFirstMiss(t *testing.T) {
	tree, err := kdtree.Build(nil)
	require.NoError(t, err)

	bouncer := kdtreetester.NewBouncer(tree, 1, 10)
	start := ray.New(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0))

	checks := bouncer.Bounce(start)
	assert.Len(t, checks, 1)
	assert.False(t, checks[0].TreeOK)
}
