// Package vecmath provides the 3-vector and axis algebra that every other
// package in kdtrace is built on: finite float32 triples, per-axis indexing,
// and the small set of componentwise operations the k-d tree builder and
// traversal need (dot, cross, inf/sup, scale, add/sub).
//
// Precision:
//
//   - All components are float32, matching the triangle/ray data a path
//     tracer feeds into the tree. This is a deliberate precision choice,
//     not a shortcut: the k-d tree's candidate-plane dedup and the AAP
//     total order (see package aap) depend on a fixed, narrow float type
//     so that two builds of the same input are bit-identical.
//
// Axis:
//
//   - Axis is a small enum {X, Y, Z} with canonical integer ordering
//     X < Y < Z, used to index into a Vec3 without branching on a string
//     or interface type.
package vecmath
