// Package aabb implements the axis-aligned bounding box used as the
// boundary of every k-d tree cell (spec.md §3, §4.C).
//
// Invariant: for an AABB b, b.Min ≤ b.Max componentwise. An AABB is
// "empty" (degenerate to a point) iff b.Min == b.Max; it is "flat" along
// an axis iff Min and Max agree on that one axis only.
//
// Operations:
//
//   - SurfaceArea / Volume: used directly by the SAH cost model (kdtree
//     package).
//   - Split: partitions a box at a plane into two boxes sharing a face,
//     used by the builder to derive child cell boundaries.
//   - Clamp: componentwise clamp of a point into the box; the clipper
//     (package clip) uses this to defend against float error at clip
//     edges (spec.md §7).
//   - Enlarge: grows a box outward by a margin; used once, at build time,
//     to build the root cell from the raw triangle bounding box.
package aabb
