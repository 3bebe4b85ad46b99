package kdtree

// splitCost evaluates the SAH cost of a candidate split (spec.md §4.J):
//
//	P_l = S_l / S_p,  P_r = S_r / S_p
//	C = φ · (K_t + K_i·(P_l·N_l + P_r·N_r))
//
// phi is cost.EmptyFactor when either side is empty, else 1. parentArea
// is assumed strictly positive — callers never evaluate a candidate
// against a degenerate parent.
func splitCost(cost CostParams, parentArea, leftArea, rightArea float32, nLeft, nRight int) float32 {
	phi := float32(1)
	if nLeft == 0 || nRight == 0 {
		phi = cost.EmptyFactor
	}

	pl := leftArea / parentArea
	pr := rightArea / parentArea

	return phi * (cost.TraverseCost + cost.IntersectCost*(pl*float32(nLeft)+pr*float32(nRight)))
}

// leafCost is the cost of not splitting a cell holding n triangles:
// K_i · N (spec.md §4.J termination rule compares against this).
func leafCost(cost CostParams, n int) float32 {
	return cost.IntersectCost * float32(n)
}

// isDegenerateSplit reports whether a candidate offers no real
// separation: one child has zero volume and no triangle lies on the
// plane to justify the cut anyway (spec.md §4.J "Rejecting degenerate
// splits").
func isDegenerateSplit(loVolume, hiVolume float32, nPlanar int) bool {
	if nPlanar > 0 {
		return false
	}

	return loVolume == 0 || hiVolume == 0
}
