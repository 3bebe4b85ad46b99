// Package triangle defines the Triangle primitive (three vertices),
// its derived bounding box and axial-alignment tag, and the
// Möller–Trumbore ray intersection routine (spec.md §4.E, §4.F).
//
// A Triangle never normalizes or reorders its vertices: v0, v1, v2 are
// kept exactly as supplied, since the clipper (package clip) depends on
// a specific seed order when it starts Sutherland–Hodgman clipping
// ([v1, v2, v0] — spec.md §9 Open Questions).
package triangle
