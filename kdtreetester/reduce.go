package kdtreetester

import (
	"math/rand"

	"github.com/katalvlaran/kdtrace/kdtree"
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
)

// Reduce shrinks triangles to a minimal subset that still reproduces a
// disagreement between kdtree.Intersect and the brute-force oracle for
// r over tRange (ported from original_source's kdtree-reducer-cli,
// which found the clipping clamp bug spec.md §7/S8 documents). Returns
// ErrNoDisagreement if the unreduced input already agrees.
//
// Algorithm: keep the two triangles implicated in the original
// disagreement (the oracle's and the tree's reported hit) fixed at the
// front, shuffle the rest for an unbiased reduction order, then
// repeatedly try removing a shrinking chunk of the remainder — halving
// the chunk size on failure, advancing past one triangle once a
// chunk of size 1 fails to remove — rebuilding and re-checking after
// every attempt.
func Reduce(triangles []triangle.Triangle, r ray.Ray, tRange [2]float32, seed int64, opts ...kdtree.Option) ([]triangle.Triangle, error) {
	tree, err := kdtree.Build(triangles, opts...)
	if err != nil {
		return nil, err
	}

	check := Verify(tree, r, tRange)
	if check.Agrees() {
		return nil, ErrNoDisagreement
	}

	reduced := seedOrder(triangles, check, rand.New(rand.NewSource(seed)))

	tryIndex := 2
	if tryIndex > len(reduced) {
		tryIndex = len(reduced)
	}
	tryCount := len(reduced) - tryIndex

	for tryIndex < len(reduced) {
		if tryCount > len(reduced)-tryIndex {
			tryCount = len(reduced) - tryIndex
		}
		if tryCount < 1 {
			tryCount = 1
		}

		candidate, ok := tryRemoving(reduced, tryIndex, tryCount, r, tRange, opts...)
		switch {
		case ok:
			reduced = candidate
			tryCount = len(reduced) - tryIndex
		case tryCount > 1:
			tryCount /= 2
		default:
			tryIndex++
			tryCount = len(reduced) - tryIndex
		}
	}

	return reduced, nil
}

// seedOrder moves the reference and tree hit triangles from the
// original disagreement to the front (positions 0 and 1) so reduction
// never discards the triangles that caused it, then shuffles the
// remainder. It tracks the tree-hit triangle by identity rather than by
// its original index: the reference-pinning swap below can relocate
// whatever sat at position 0 (including the tree-hit triangle itself,
// when it was the one originally at index 0) before the tree pin runs,
// so the tree pin must follow that triangle to wherever it landed
// instead of re-reading its stale original index.
func seedOrder(triangles []triangle.Triangle, check Check, rng *rand.Rand) []triangle.Triangle {
	out := make([]triangle.Triangle, len(triangles))
	copy(out, triangles)

	treePos := -1
	if check.TreeOK {
		treePos = int(check.Tree.Index)
	}

	if check.ReferenceOK {
		refPos := int(check.Reference.Index)
		if refPos != 0 {
			out[0], out[refPos] = out[refPos], out[0]

			switch treePos {
			case 0:
				treePos = refPos
			case refPos:
				treePos = 0
			}
		}
	}

	if check.TreeOK && treePos >= 0 && treePos != 1 {
		out[1], out[treePos] = out[treePos], out[1]
	}

	if len(out) > 2 {
		rest := out[2:]
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	}

	return out
}

// tryRemoving rebuilds a tree without triangles[from:from+count] and
// reports whether the disagreement survives the removal.
func tryRemoving(triangles []triangle.Triangle, from, count int, r ray.Ray, tRange [2]float32, opts ...kdtree.Option) ([]triangle.Triangle, bool) {
	reduced := make([]triangle.Triangle, 0, len(triangles)-count)
	reduced = append(reduced, triangles[:from]...)
	reduced = append(reduced, triangles[from+count:]...)

	tree, err := kdtree.Build(reduced, opts...)
	if err != nil {
		return nil, false
	}

	check := Verify(tree, r, tRange)

	return reduced, !check.Agrees()
}
