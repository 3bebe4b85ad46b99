// Package aap implements the axis-aligned plane (v[axis] = distance)
// used to represent k-d tree split planes (spec.md §3, §4.D).
//
// AAP carries a total order — lexicographic by (Axis, Distance), using
// the IEEE 754 total order on Distance, computed from the float's bit
// pattern so that -0.0 sorts before +0.0 and NaNs sort at the ends by
// sign — so that candidate split planes can be deduplicated and sorted
// deterministically (spec.md §4.K step 3, §9 numerical-robustness
// notes).
//
// AAP.IntersectRay uses the unrestricted t domain (spec.md §9 Open
// Questions): it does not clamp to [0,1] itself, leaving that to the
// caller (kdtree traversal enforces [t1,t2] externally; package clip's
// edge-intersection routine enforces [0,1] on its own, separately, since
// it operates on bounded polygon edges).
package aap
