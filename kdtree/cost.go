package kdtree

import "github.com/katalvlaran/kdtrace/aabb"

// Cost recomputes tree's SAH cost under params by re-running the
// §4.J recurrence down the actual tree structure (rather than the
// single-candidate cost evaluated during Build): a leaf costs
// K_i · N; an internal node costs φ · (K_t + P_l·Cost(left) +
// P_r·Cost(right)), where φ is the empty factor whenever either child
// is an empty leaf. This lets callers compare two builders (e.g.
// different CostParams, or a serial vs. parallel build) on a common
// cost model (spec.md §6 cost). Returned as float64 since Cost is a
// comparison tool (kdtree-reducer-cli's original use), not a value fed
// back into float32 SAH arithmetic.
func Cost(tree *Tree, params CostParams) float64 {
	return float64(nodeCost(tree.Root, tree.Boundary, params))
}

func nodeCost(n *Node, boundary aabb.AABB, params CostParams) float32 {
	if n.Leaf {
		return leafCost(params, len(n.Indices))
	}

	lo, hi := boundary.Split(n.Plane)
	parentArea := boundary.SurfaceArea()
	if parentArea == 0 {
		return 0
	}

	phi := float32(1)
	if isEmptyLeaf(n.Left) || isEmptyLeaf(n.Right) {
		phi = params.EmptyFactor
	}

	pl := lo.SurfaceArea() / parentArea
	pr := hi.SurfaceArea() / parentArea

	return phi * (params.TraverseCost + pl*nodeCost(n.Left, lo, params) + pr*nodeCost(n.Right, hi, params))
}

func isEmptyLeaf(n *Node) bool {
	return n.Leaf && len(n.Indices) == 0
}
