// Package satbox implements the separating-axis test (SAT) for
// triangle/box overlap (spec.md §4.G), used to assert that the clipper
// (package clip) never leaves a sliver of the original triangle outside
// the box it was clipped against. It is not on the build-time hot path;
// it exists as a post-clip sanity check exercised by tests.
//
// The test checks, in order, the three box-face normals (a fast AABB
// overlap of the triangle's own bbox against the box), the triangle's
// face normal, and the nine cross products of the box's axes with the
// triangle's edges — the standard Akenine-Möller formulation.
package satbox
