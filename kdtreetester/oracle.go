package kdtreetester

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/kdtrace/kdtree"
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
)

// tTolerance and uvTolerance are the float tolerances spec.md §8
// invariant 1 requires between a tree query and the brute-force oracle.
const (
	tTolerance  = 1e-6
	uvTolerance = 1e-5
)

// BruteForce linearly scans triangles and returns the minimum-t hit
// within tRange, the same contract as kdtree.Intersect. This is the
// oracle every tree query is checked against.
func BruteForce(triangles []triangle.Triangle, r ray.Ray, tRange [2]float32) (kdtree.Result, bool) {
	best := kdtree.Result{}
	found := false
	for i, tri := range triangles {
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

// Check is the outcome of verifying one ray against both the tree and
// the brute-force oracle, mirroring original_source's
// CheckedIntersection.
type Check struct {
	Ray       ray.Ray
	Reference kdtree.Result
	ReferenceOK bool
	Tree      kdtree.Result
	TreeOK    bool
}

// Agrees reports whether Tree and Reference agree within spec.md §8's
// tolerances: both miss, or both hit the same triangle with (t,u,v)
// within tolerance.
func (c Check) Agrees() bool {
	if !c.ReferenceOK && !c.TreeOK {
		return true
	}
	if c.ReferenceOK != c.TreeOK {
		return false
	}
	if c.Reference.Index != c.Tree.Index {
		return false
	}

	return scalar.EqualWithinAbs(float64(c.Reference.Hit.T), float64(c.Tree.Hit.T), tTolerance) &&
		scalar.EqualWithinAbs(float64(c.Reference.Hit.U), float64(c.Tree.Hit.U), uvTolerance) &&
		scalar.EqualWithinAbs(float64(c.Reference.Hit.V), float64(c.Tree.Hit.V), uvTolerance)
}

// Verify runs r against both tree and the brute-force oracle over
// tree.Triangles, returning the comparison.
func Verify(tree *kdtree.Tree, r ray.Ray, tRange [2]float32) Check {
	reference, referenceOK := BruteForce(tree.Triangles, r, tRange)
	treeResult, treeOK := kdtree.Intersect(tree, r, tRange)

	return Check{
		Ray:         r,
		Reference:   reference,
		ReferenceOK: referenceOK,
		Tree:        treeResult,
		TreeOK:      treeOK,
	}
}
