package ray

import "github.com/katalvlaran/kdtrace/vecmath"

// Ray is a parametric segment Origin + t·Direction, t in [0, 1] by
// convention. Direction is not required to be unit length: its magnitude
// sets the scale of t for the caller (a shadow ray to a known point uses
// Direction = point-origin so that t=1 lands exactly on the point).
type Ray struct {
	Origin    vecmath.Vec3
	Direction vecmath.Vec3
}

// New constructs a Ray from an origin and a (not necessarily unit)
// direction.
func New(origin, direction vecmath.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Param evaluates the ray at parameter t: Origin + t·Direction.
func (r Ray) Param(t float32) vecmath.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Reversed returns the ray that traces the same segment in the opposite
// direction: origin moves to the far endpoint, direction is negated.
// Used by scenario tests (spec.md S2/S3) that check symmetry.
func (r Ray) Reversed() Ray {
	return Ray{
		Origin:    r.Param(1),
		Direction: r.Direction.Scale(-1),
	}
}
