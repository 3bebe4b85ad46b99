package vecmath

import "fmt"

// Axis identifies one of the three coordinate axes. The zero value is X.
// Axis values have a canonical integer ordering X < Y < Z; this ordering
// is load-bearing for aap.AAP's total order (see package aap).
type Axis uint8

const (
	// X is the first coordinate axis.
	X Axis = iota
	// Y is the second coordinate axis.
	Y
	// Z is the third coordinate axis.
	Z
)

// numAxes is the number of coordinate axes; Next wraps around it.
const numAxes = 3

// String renders the axis as "X", "Y", or "Z" for diagnostics and the
// JSON/graphviz dumps (kdtree/format.go).
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Valid reports whether a is one of X, Y, Z.
func (a Axis) Valid() bool {
	return a == X || a == Y || a == Z
}

// Next returns the axis that follows a in the canonical ordering,
// wrapping Z back to X.
func (a Axis) Next() Axis {
	return Axis((uint8(a) + 1) % numAxes)
}

// Others returns the two axes other than a, in canonical order.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default: // Z
		return X, Y
	}
}

// AxisFromString parses "X", "Y", "Z" as produced by Axis.String, for the
// JSON persisted format (kdtree/format.go). ok is false for any other
// input.
func AxisFromString(s string) (axis Axis, ok bool) {
	switch s {
	case "X":
		return X, true
	case "Y":
		return Y, true
	case "Z":
		return Z, true
	default:
		return 0, false
	}
}
