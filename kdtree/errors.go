package kdtree

import "errors"

// Sentinel errors returned by Build. Intersect never returns an error:
// "no hit" is carried in its result, not as an error (spec.md §7).
var (
	// ErrMaxDepthExceeded indicates a requested MaxDepth above the hard
	// cap (hardMaxDepth); the traversal stack is a fixed-size array
	// sized to the cap, so honoring a larger depth could overflow it at
	// query time.
	ErrMaxDepthExceeded = errors.New("kdtree: max depth exceeds hard cap")

	// ErrInvalidTraverseCost indicates a non-positive CostParams.TraverseCost.
	ErrInvalidTraverseCost = errors.New("kdtree: traverse cost must be positive")

	// ErrInvalidIntersectCost indicates a non-positive CostParams.IntersectCost.
	ErrInvalidIntersectCost = errors.New("kdtree: intersect cost must be positive")

	// ErrInvalidEmptyFactor indicates an EmptyFactor outside (0, 1].
	ErrInvalidEmptyFactor = errors.New("kdtree: empty factor must be in (0, 1]")
)
