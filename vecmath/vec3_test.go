package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kdtrace/vecmath"
)

func TestVec3Arithmetic(t *testing.T) {
	a := vecmath.New(1, 2, 3)
	b := vecmath.New(4, -1, 0.5)

	assert.Equal(t, vecmath.New(5, 1, 3.5), a.Add(b))
	assert.Equal(t, vecmath.New(-3, 3, 2.5), a.Sub(b))
	assert.Equal(t, vecmath.New(2, 4, 6), a.Scale(2))
	assert.InDelta(t, float32(3.5), a.Dot(b), 1e-6)
}

func TestVec3Cross(t *testing.T) {
	x := vecmath.New(1, 0, 0)
	y := vecmath.New(0, 1, 0)

	assert.Equal(t, vecmath.New(0, 0, 1), x.Cross(y))
}

func TestVec3GetWith(t *testing.T) {
	v := vecmath.New(1, 2, 3)

	assert.Equal(t, float32(1), v.Get(vecmath.X))
	assert.Equal(t, float32(2), v.Get(vecmath.Y))
	assert.Equal(t, float32(3), v.Get(vecmath.Z))

	w := v.With(vecmath.Y, 99)
	assert.Equal(t, vecmath.New(1, 99, 3), w)
	// With must not mutate the receiver.
	assert.Equal(t, vecmath.New(1, 2, 3), v)
}

func TestInfSup(t *testing.T) {
	a := vecmath.New(1, 5, -2)
	b := vecmath.New(3, -1, 4)

	assert.Equal(t, vecmath.New(1, -1, -2), vecmath.Inf(a, b))
	assert.Equal(t, vecmath.New(3, 5, 4), vecmath.Sup(a, b))
}

func TestClamp(t *testing.T) {
	lo := vecmath.New(0, 0, 0)
	hi := vecmath.New(1, 1, 1)

	inside := vecmath.New(0.5, 0.5, 0.5)
	assert.Equal(t, inside, vecmath.Clamp(inside, lo, hi))

	outside := vecmath.New(-0.2, 1.5, 0.5)
	assert.Equal(t, vecmath.New(0, 1, 0.5), vecmath.Clamp(outside, lo, hi))
}

func TestAxisOrdering(t *testing.T) {
	assert.True(t, vecmath.X < vecmath.Y)
	assert.True(t, vecmath.Y < vecmath.Z)

	assert.Equal(t, "X", vecmath.X.String())
	assert.Equal(t, "Y", vecmath.Y.String())
	assert.Equal(t, "Z", vecmath.Z.String())

	ox, oy := vecmath.Z.Others()
	assert.Equal(t, vecmath.X, ox)
	assert.Equal(t, vecmath.Y, oy)

	assert.Equal(t, vecmath.Y, vecmath.X.Next())
	assert.Equal(t, vecmath.Z, vecmath.Y.Next())
	assert.Equal(t, vecmath.X, vecmath.Z.Next())
}

func TestAxisFromString(t *testing.T) {
	axis, ok := vecmath.AxisFromString("Y")
	assert.True(t, ok)
	assert.Equal(t, vecmath.Y, axis)

	_, ok = vecmath.AxisFromString("W")
	assert.False(t, ok)
}
