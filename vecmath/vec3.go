package vecmath

import "math"

// Vec3 is an ordered triple of finite float32 components. Vec3 values are
// used for triangle vertices, ray origins/directions, and AABB corners
// throughout kdtrace.
type Vec3 struct {
	X, Y, Z float32
}

// New constructs a Vec3 from three components.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Get returns the component of v along axis a.
func (v Vec3) Get(a Axis) float32 {
	switch a {
	case X:
		return v.X
	case Y:
		return v.Y
	default: // Z
		return v.Z
	}
}

// With returns a copy of v with the component along axis a replaced by c.
func (v Vec3) With(a Axis, c float32) Vec3 {
	switch a {
	case X:
		v.X = c
	case Y:
		v.Y = c
	default: // Z
		v.Z = c
	}

	return v
}

// Add returns v + w, componentwise.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w, componentwise.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Inf returns the componentwise minimum of v and w ("infimum").
func Inf(v, w Vec3) Vec3 {
	return Vec3{
		X: min32(v.X, w.X),
		Y: min32(v.Y, w.Y),
		Z: min32(v.Z, w.Z),
	}
}

// Sup returns the componentwise maximum of v and w ("supremum").
func Sup(v, w Vec3) Vec3 {
	return Vec3{
		X: max32(v.X, w.X),
		Y: max32(v.Y, w.Y),
		Z: max32(v.Z, w.Z),
	}
}

// Clamp returns v with each component clamped to [lo, hi] (componentwise).
// Callers pass lo=AABB.Min, hi=AABB.Max to keep a point inside a box; this
// is the defensive operation clip.Clip relies on (spec §4.H / §7).
func Clamp(v, lo, hi Vec3) Vec3 {
	return Vec3{
		X: clamp32(v.X, lo.X, hi.X),
		Y: clamp32(v.Y, lo.Y, hi.Y),
		Z: clamp32(v.Z, lo.Z, hi.Z),
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
