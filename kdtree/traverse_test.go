package kdtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/kdtrace/kdtree"
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// bruteForce is the oracle spec.md §8 invariant 1 checks the tree
// against: a linear scan over every triangle, keeping the minimum-t hit
// within tRange.
func bruteForce(tris []triangle.Triangle, r ray.Ray, tRange [2]float32) (kdtree.Result, bool) {
	best := kdtree.Result{}
	found := false
	for i, tri := range tris {
		hit, ok := triangle.Intersect(tri, r)
		if !ok || hit.T < tRange[0] || hit.T > tRange[1] {
			continue
		}
		if !found || hit.T < best.Hit.T {
			best = kdtree.Result{Index: uint32(i), Hit: hit}
			found = true
		}
	}

	return best, found
}

// TestIntersectMatchesBruteForceOracle is spec.md §8 invariant 1, the
// property the kdtree-tester package exists to automate: for a
// reasonably dense mesh and many rays, the tree's answer matches a
// linear scan to within float tolerance.
func TestIntersectMatchesBruteForceOracle(t *testing.T) {
	tris := gridMesh(5, 5)
	tree, err := kdtree.Build(tris)
	require.NoError(t, err)

	rays := []ray.Ray{
		ray.New(vecmath.New(1.5, 1.5, -5), vecmath.New(0, 0, 10)),
		ray.New(vecmath.New(0.25, 0.25, -5), vecmath.New(0, 0, 10)),
		ray.New(vecmath.New(-10, 2, 0.1), vecmath.New(20, 0, 0)),
		ray.New(vecmath.New(2, -10, 0.1), vecmath.New(0, 20, 0)),
		ray.New(vecmath.New(100, 100, 100), vecmath.New(1, 1, 1)),
	}

	for _, r := range rays {
		want, wantOK := bruteForce(tris, r, [2]float32{0, 1})
		got, gotOK := kdtree.Intersect(tree, r, [2]float32{0, 1})
		require.Equal(t, wantOK, gotOK)
		if !wantOK {
			continue
		}
		assert.True(t, scalar.EqualWithinAbs(float64(want.Hit.T), float64(got.Hit.T), 1e-6))
		assert.True(t, scalar.EqualWithinAbs(float64(want.Hit.U), float64(got.Hit.U), 1e-5))
		assert.True(t, scalar.EqualWithinAbs(float64(want.Hit.V), float64(got.Hit.V), 1e-5))
	}
}

// TestIntersectReturnsGlobalMinimumT is spec.md §8 invariant 6: among
// several triangles a ray could hit, the closest one wins regardless of
// which leaf it lives in.
func TestIntersectReturnsGlobalMinimumT(t *testing.T) {
	near := triangle.New(vecmath.New(-1, -1, 1), vecmath.New(1, -1, 1), vecmath.New(0, 1, 1))
	far := triangle.New(vecmath.New(-1, -1, 5), vecmath.New(1, -1, 5), vecmath.New(0, 1, 5))

	tree, err := kdtree.Build([]triangle.Triangle{far, near})
	require.NoError(t, err)

	r := ray.New(vecmath.New(0, -0.5, -10), vecmath.New(0, 0, 20))
	got, ok := kdtree.Intersect(tree, r, [2]float32{0, 1})
	require.True(t, ok)
	assert.Equal(t, uint32(1), got.Index)
	assert.Less(t, math.Abs(float64(got.Hit.T)-0.55), 0.01)
}

// TestIntersectOutsideTRangeMisses confirms a hit whose t falls outside
// the caller's [t_lo, t_hi] is not reported.
func TestIntersectOutsideTRangeMisses(t *testing.T) {
	tri := triangle.New(vecmath.New(-1, -1, 0), vecmath.New(1, -1, 0), vecmath.New(0, 1, 0))
	tree, err := kdtree.Build([]triangle.Triangle{tri})
	require.NoError(t, err)

	r := ray.New(vecmath.New(0, -0.5, -10), vecmath.New(0, 0, 20))
	_, ok := kdtree.Intersect(tree, r, [2]float32{0, 0.1})
	assert.False(t, ok)
}

// gridMesh builds an nx-by-ny grid of unit-square triangle pairs in the
// z=0 plane, spanning [0,nx]x[0,ny] — enough structure for Build to
// produce several internal nodes.
func gridMesh(nx, ny int) []triangle.Triangle {
	var out []triangle.Triangle
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			fx, fy := float32(x), float32(y)
			out = append(out,
				triangle.New(vecmath.New(fx, fy, 0), vecmath.New(fx+1, fy, 0), vecmath.New(fx, fy+1, 0)),
				triangle.New(vecmath.New(fx+1, fy, 0), vecmath.New(fx+1, fy+1, 0), vecmath.New(fx, fy+1, 0)),
			)
		}
	}

	return out
}
