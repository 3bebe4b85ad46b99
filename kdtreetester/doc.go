// Package kdtreetester is the brute-force oracle and stress-testing
// toolkit for package kdtree (spec.md §8's "kdtree-tester is precisely
// this oracle"). None of it is part of the core library's public
// contract; it exists to answer one question — does Intersect agree
// with a linear scan? — under increasingly adversarial inputs:
//
//   - BruteForce / Verify check a single ray.
//   - Bouncer fires a ray into a tree, reflects it off whatever it hits,
//     and re-verifies at every bounce (ported from the original
//     ray_bouncer.rs stress generator).
//   - Reduce shrinks a triangle list that reproduces a disagreement down
//     to a minimal repro case (ported from kdtree-reducer-cli), the tool
//     that originally found the clipping clamp bug spec.md §7/S8 names.
package kdtreetester
