package aap

import (
	"cmp"
	"math"

	"github.com/katalvlaran/kdtrace/ray"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// AAP is an axis-aligned plane: the set of points p with p[Axis] ==
// Distance.
type AAP struct {
	Axis     vecmath.Axis
	Distance float32
}

// New constructs an AAP.
func New(axis vecmath.Axis, distance float32) AAP {
	return AAP{Axis: axis, Distance: distance}
}

// IntersectRay returns the parameter t at which r crosses the plane, and
// true if the ray is not parallel to it. The returned t is unrestricted
// (may lie outside [0,1]); the caller is responsible for any domain
// check (spec.md §9 Open Questions — k-d tree traversal intentionally
// uses this unrestricted form).
func (p AAP) IntersectRay(r ray.Ray) (t float32, ok bool) {
	d := r.Direction.Get(p.Axis)
	if d == 0 {
		return 0, false
	}

	return (p.Distance - r.Origin.Get(p.Axis)) / d, true
}

// Compare implements the total order lexicographic by (Axis, Distance),
// using the IEEE 754 total order on Distance (-NaN < -Inf < ... < -0.0 <
// +0.0 < ... < +Inf < +NaN) so that -0.0/+0.0 and (should they ever
// occur) NaNs sort deterministically instead of crashing a sort. Returns
// a negative number if p sorts before o, zero if equal, positive if
// after.
func (p AAP) Compare(o AAP) int {
	if c := cmp.Compare(uint8(p.Axis), uint8(o.Axis)); c != 0 {
		return c
	}

	return cmp.Compare(totalOrderKey(p.Distance), totalOrderKey(o.Distance))
}

// totalOrderKey maps f to an int32 whose signed order is the IEEE 754
// total order on float32: a negative value has every bit but the sign
// flipped, so larger magnitudes sort lower.
func totalOrderKey(f float32) int32 {
	b := int32(math.Float32bits(f))

	return b ^ int32(uint32(b>>31)>>1)
}

// Equal reports whether p and o compare equal under Compare.
func (p AAP) Equal(o AAP) bool {
	return p.Compare(o) == 0
}
