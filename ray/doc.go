// Package ray defines the parametric ray segment used by every query in
// kdtrace.
//
// A Ray represents the segment origin + t·direction for t in [0, 1] by
// convention; direction is not normalized. Callers that want an infinite
// ray pass a sufficiently large t_range (see kdtree.Intersect) together
// with a direction of the desired length — the tree itself never assumes
// unit length.
package ray
