package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []Vector{
	New2D(1, 0),
	New2D(3, 4),
	New2D(-2.5, 0.75),
	New2D(0.001, -0.002),
	New3D(1, 0, 0),
	New3D(1, 2, 3),
	New3D(-4, 0.5, 7.25),
	New3D(0.3, -0.6, 0.9),
}

var samples3D = []Vector3D{
	New3D(1, 0, 0),
	New3D(0, 1, 0),
	New3D(1, 2, 3),
	New3D(-4, 0.5, 7.25),
	New3D(0.3, -0.6, 0.9),
	New3D(2, 2, -1),
}

// extremes sit near the float32 range limits, where a float32 sum of squares
// would overflow or underflow. They are kept out of samples because the
// arithmetic properties compare with an absolute Epsilon.
var extremes = []Vector{
	New2D(1e20, -3e20),
	New2D(1e-40, 0),
	New3D(1e20, 0, 0),
	New3D(2e30, -1e30, 5e29),
	New3D(1e-25, -3e-25, 2e-25),
}

func sameDim(v Vector) []Vector {
	var out []Vector
	for _, s := range samples {
		if s.Dim() == v.Dim() {
			out = append(out, s)
		}
	}
	return out
}

func TestProperty_MagnitudeNonNegative(t *testing.T) {
	for _, v := range append(extremes, samples...) {
		assert.Greater(t, v.Magnitude(), float32(0), "%v", v)
		assert.False(t, math.IsInf(float64(v.Magnitude()), 0), "%v", v)
	}
	for _, v := range []Vector{Vector2D{}, Vector3D{}} {
		assert.Equal(t, float32(0), v.Magnitude(), "%v", v)
	}
}

func TestProperty_NormalizeUnitSameDirection(t *testing.T) {
	for _, v := range append(extremes, samples...) {
		n, err := v.Normalize()
		require.NoError(t, err, "%v", v)
		assert.InDelta(t, 1.0, n.Magnitude(), 1e-4, "%v", v)
		d, err := n.Dot(v)
		require.NoError(t, err)
		assert.Greater(t, d, float32(0), "%v", v)
	}
}

func TestProperty_CrossOrthogonal(t *testing.T) {
	for _, a := range samples3D {
		for _, b := range samples3D {
			c := Cross(a, b)
			da, err := c.Dot(a)
			require.NoError(t, err)
			db, err := c.Dot(b)
			require.NoError(t, err)
			assert.InDelta(t, 0, da, 1e-4, "%v x %v", a, b)
			assert.InDelta(t, 0, db, 1e-4, "%v x %v", a, b)
		}
	}
}

func TestProperty_CrossAnticommutative(t *testing.T) {
	for _, a := range samples3D {
		for _, b := range samples3D {
			ab := Cross(a, b)
			ba := Cross(b, a)
			assert.True(t, ab.Equal(ba.Negate()), "%v x %v", a, b)
		}
	}
}

func TestProperty_AddCommutativeAssociative(t *testing.T) {
	for _, a := range samples {
		peers := sameDim(a)
		for _, b := range peers {
			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)
			assert.True(t, ab.Equal(ba), "%v + %v", a, b)

			for _, c := range peers {
				bc, err := b.Add(c)
				require.NoError(t, err)
				left, err := ab.Add(c)
				require.NoError(t, err)
				right, err := a.Add(bc)
				require.NoError(t, err)
				assert.True(t, left.Equal(right), "(%v + %v) + %v", a, b, c)
			}
		}
	}
}

func TestProperty_AddInverseIsZero(t *testing.T) {
	for _, v := range samples {
		sum, err := v.Add(v.Scale(-1))
		require.NoError(t, err)
		zero, err := FromComponents(make([]float32, v.Dim())...)
		require.NoError(t, err)
		assert.True(t, sum.Equal(zero), "%v", v)
	}
}

func TestProperty_ScaleDivideRoundTrip(t *testing.T) {
	for _, v := range samples {
		for _, s := range []float32{-3, -0.5, 0.25, 1, 7.5} {
			back, err := v.Scale(s).Div(s)
			require.NoError(t, err)
			assert.True(t, back.Equal(v), "(%v * %v) / %v = %v", v, s, s, back)
		}
	}
}

func TestProperty_AngleWithSelfAndOpposite(t *testing.T) {
	for _, v := range append(extremes, samples...) {
		a, err := AngleBetween(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 0, a, 1e-4, "%v", v)

		a, err = AngleBetween(v, v.Negate())
		require.NoError(t, err)
		assert.InDelta(t, 3.14159265, a, 1e-4, "%v", v)
	}
}

func TestProperty_DimensionMismatch(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if a.Dim() == b.Dim() {
				continue
			}
			_, err := a.Dot(b)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = a.Add(b)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = a.Sub(b)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
			assert.False(t, a.Equal(b))
		}
	}
}
