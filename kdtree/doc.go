// Package kdtree implements an axis-aligned k-d tree over a static
// triangle mesh, built with a Surface Area Heuristic (SAH) cost model
// and queried with a stackful sequential ray walk. It is the
// computational core described by spec.md §§3–9: everything needed to
// turn a triangle array into a structure that answers
// "closest triangle hit by this ray" in sublinear expected time.
//
// Build:
//
//   - Build(triangles, opts...) recursively partitions the root cell
//     (the triangle bounding box, enlarged by an epsilon margin) using
//     perfect-split candidates derived from each triangle's clipped
//     extent within the current cell (package clip), evaluates each
//     candidate's SAH cost (CostParams, sah.go), and keeps the
//     argmin — terminating into a leaf when no split beats the cost of
//     not splitting, or when the depth budget is exhausted.
//   - The build is embarrassingly parallel: independent left/right
//     subtrees, and independent per-candidate cost evaluations within a
//     node, fan out via golang.org/x/sync/errgroup for nodes shallower
//     than a configurable depth (deeper nodes run inline, since
//     goroutine overhead dwarfs the work near the leaves).
//   - The build is deterministic: the same triangles and CostParams
//     always produce a structurally identical tree, because candidate
//     planes are deduplicated and sorted under aap.AAP's total order and
//     ties are always broken by that same order, regardless of how much
//     of the candidate evaluation ran concurrently.
//
// Query:
//
//   - Intersect(tree, r, tRange) descends from the root, maintaining a
//     small fixed-capacity stack of deferred (node, t1, t2) frames,
//     visiting near/far children in the order the ray actually crosses
//     them, and returns the globally closest hit within tRange.
//   - Concurrent queries over the same *Tree require no synchronization:
//     Build never mutates a tree after returning it.
//
// Diagnostics:
//
//   - Nodes iterates the tree depth-first (Go 1.23 range-over-func).
//   - CountNodes / CountGeometries report structural statistics.
//   - Cost recomputes a tree's SAH cost under a (possibly different)
//     CostParams, for comparing builders.
//   - DumpJSON / DumpGraphviz persist a tree for external inspection
//     (spec.md §6 — diagnostic only, not part of the core contract).
package kdtree
