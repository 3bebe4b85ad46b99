// Package clip implements Sutherland–Hodgman clipping of a Triangle
// against an AABB's six half-spaces (spec.md §4.H). This underpins both
// the k-d tree builder's split-plane candidate generation and its
// per-cell tight bounding boxes: the builder always derives both from
// the triangle clipped to the current cell, never from the triangle's
// raw bbox.
//
// The output polygon is seeded as [v1, v2, v0] (not [v0, v1, v2] — this
// exact order is one of spec.md §9's Open Questions, resolved in favor
// of matching the original implementation so that downstream vertex
// ordering is reproducible). Every emitted vertex is clamped into the
// clipping box (AABB.Clamp) before being kept: without this clamp,
// accumulated float error in the parametric edge-intersection formula
// can push a vertex a few ULPs outside the box on an axis orthogonal to
// the plane being clipped against — the historical bug spec.md §8/S8
// documents and requires a regression test for.
package clip
