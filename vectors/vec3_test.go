package vectors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func TestVec3_Arithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	assert.Equal(t, New(5, -3, 9), a.Add(b))
	assert.Equal(t, New(-3, 7, -3), a.Sub(b))
	assert.Equal(t, New(-1, -2, -3), a.Neg())
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
	assert.Equal(t, New(0.5, 1, 1.5), a.Div(2))
	assert.Equal(t, New(4, -10, 18), a.Mul(b))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, 14.0, a.LengthSquared())
	assert.InDelta(t, math.Sqrt(14), a.Length(), tolerance)
}

func TestVec3_Cross(t *testing.T) {
	x, y, z := New(1, 0, 0), New(0, 1, 0), New(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), y.Cross(x))
}

func TestVec3_UnitHasLengthOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandomIn(rng, -100, 100)
		if v.LengthSquared() == 0 {
			continue
		}
		assert.InDelta(t, 1.0, v.Unit().Length(), 1e-12, "unit(%v)", v)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"zero", Zero(), true},
		{"tiny", New(1e-9, -1e-9, 5e-9), true},
		{"one component large", New(1e-9, 1e-7, 0), false},
		{"unit", New(0, 1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.NearZero())
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	n := New(0, 1, 0)
	assert.Equal(t, New(1, 1, 0), New(1, -1, 0).Reflect(n))
	assert.Equal(t, New(0, 1, 0), New(0, -1, 0).Reflect(n))
}

func TestVec3_ReflectPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		n := RandomUnitVector(rng)
		assert.InDelta(t, v.Length(), v.Reflect(n).Length(), 1e-12)
	}
}

func TestVec3_RefractMatchedIndexIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := RandomUnitVector(rng)
		n := RandomUnitVector(rng)
		if v.Dot(n) > 0 {
			n = n.Neg()
		}
		assert.Equal(t, v, v.Refract(n, 1.0))
	}
}

func TestVec3_RefractSnell(t *testing.T) {
	n := New(0, 1, 0)
	theta := math.Pi / 6
	in := New(math.Sin(theta), -math.Cos(theta), 0)
	eta := 1 / 1.5

	out := in.Refract(n, eta)

	require.InDelta(t, 1.0, out.Length(), 1e-9)
	sinOut := out.X
	assert.InDelta(t, eta*math.Sin(theta), sinOut, 1e-9, "Snell's law")
	assert.Less(t, out.Y, 0.0, "refracted ray continues below the surface")

	// normal incidence passes straight through
	assert.Equal(t, New(0, -1, 0), New(0, -1, 0).Refract(n, eta))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(New(0, 0, 0), New(3, 4, 0)), tolerance)
}
