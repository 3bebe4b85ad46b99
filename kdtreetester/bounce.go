package kdtreetester

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/kdtrace/kdtree"
	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// bounceEpsilon offsets a bounced ray's origin along the hit normal so
// the next query does not immediately re-intersect the same triangle
// due to float error at the hit point.
const bounceEpsilon = 1e-4

// Bouncer fires a ray into a tree and reflects it off whatever it hits,
// re-verifying against the brute-force oracle at every bounce (ported
// from original_source's ray_bouncer.rs). Unlike the original, which
// samples a material's BRDF, Bouncer samples a direction uniformly over
// the hemisphere above the hit normal — materials are out of scope
// here (spec.md §1); the point is stressing traversal, not shading.
type Bouncer struct {
	Tree       *kdtree.Tree
	Rng        *rand.Rand
	MaxBounces int
}

// NewBouncer builds a Bouncer with a deterministic RNG stream seeded by
// seed, mirroring tsp.rngFromSeed's determinism discipline: the same
// seed always reproduces the same bounce path.
func NewBouncer(tree *kdtree.Tree, seed int64, maxBounces int) *Bouncer {
	return &Bouncer{
		Tree:       tree,
		Rng:        rand.New(rand.NewSource(seed)),
		MaxBounces: maxBounces,
	}
}

// Bounce fires start into b.Tree and follows up to MaxBounces
// reflections, verifying each segment against the brute-force oracle.
// It stops early — returning the checks gathered so far — as soon as a
// segment disagrees with the oracle or fails to hit anything.
func (b *Bouncer) Bounce(start ray.Ray) []Check {
	checks := make([]Check, 0, b.MaxBounces)
	current := start
	fullRange := [2]float32{0, math.MaxFloat32}

	for i := 0; i < b.MaxBounces; i++ {
		check := Verify(b.Tree, current, fullRange)
		checks = append(checks, check)
		if !check.Agrees() || !check.TreeOK {
			break
		}

		tri := b.Tree.Triangles[check.Tree.Index]
		n := triangleNormal(tri)
		point := current.Param(check.Tree.Hit.T)
		origin := point.Add(n.Scale(bounceEpsilon))
		direction := randomHemisphereDirection(b.Rng, n)

		current = ray.New(origin, direction)
	}

	return checks
}

// triangleNormal returns the unit normal of t via edge1 × edge2,
// falling back to the raw (zero) cross product for a degenerate
// triangle rather than dividing by zero.
func triangleNormal(t triangle.Triangle) vecmath.Vec3 {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	n := edge1.Cross(edge2)

	length := n.Length()
	if length == 0 {
		return n
	}

	return n.Scale(1 / length)
}

// randomHemisphereDirection samples a direction uniformly over the unit
// sphere and flips it into the hemisphere above n if needed. Simple and
// not cosine-weighted — adequate for a traversal stress generator, not
// a renderer.
func randomHemisphereDirection(rng *rand.Rand, n vecmath.Vec3) vecmath.Vec3 {
	for {
		v := vecmath.New(
			rng.Float32()*2-1,
			rng.Float32()*2-1,
			rng.Float32()*2-1,
		)
		length := v.Length()
		if length < 1e-6 || length > 1 {
			continue
		}
		v = v.Scale(1 / length)
		if v.Dot(n) < 0 {
			v = v.Scale(-1)
		}

		return v
	}
}
