package vector

import (
	"fmt"
	"math"

	"github.com/viant/vec/search"
)

// Epsilon is the per-component tolerance used by Equal.
const Epsilon float32 = 1e-4

// Vector is the capability set shared by Vector2D and Vector3D. Algorithms
// written against Vector work for either dimensionality; operations that
// combine two vectors fail with ErrDimensionMismatch when the operands
// differ.
//
// The set of implementations is closed. Equality has no default: each
// concrete type compares its own components.
type Vector interface {
	fmt.Stringer

	// Dim returns the number of components (2 or 3).
	Dim() int

	// Components returns a fresh copy of the components in x, y[, z] order.
	Components() []float32

	// Magnitude returns the Euclidean norm. It is +Inf only when the norm
	// itself exceeds the float32 range.
	Magnitude() float32

	// Normalize returns a unit-length vector with the same direction. It
	// fails with ErrDegenerateVector for the zero vector.
	Normalize() (Vector, error)

	// Dot returns the inner product.
	Dot(other Vector) (float32, error)

	// Cross returns the right-handed cross product. Two-dimensional
	// receivers always fail with ErrNotApplicable.
	Cross(other Vector) (Vector3D, error)

	Add(other Vector) (Vector, error)
	Sub(other Vector) (Vector, error)
	Scale(s float32) Vector

	// Div divides every component by s; s == 0 fails with ErrDivisionByZero.
	Div(s float32) (Vector, error)

	// Negate is shorthand for Scale(-1).
	Negate() Vector

	// Equal reports whether other has the same dimensionality and every
	// component lies within Epsilon of the receiver's.
	Equal(other Vector) bool
	NotEqual(other Vector) bool

	sealed()
}

// FromComponents builds a Vector2D or Vector3D from a component slice.
func FromComponents(c ...float32) (Vector, error) {
	switch len(c) {
	case 2:
		return New2D(c[0], c[1]), nil
	case 3:
		return New3D(c[0], c[1], c[2]), nil
	default:
		return nil, fmt.Errorf("vector: %w: %d components", ErrUnsupportedDimension, len(c))
	}
}

// norm returns the Euclidean norm of c. Components are first divided by the
// largest absolute component, so the float32 sum of squares in search stays
// within [1, len(c)] and never overflows, or underflows to 0 for a non-zero
// vector.
func norm(c ...float64) float64 {
	var peak float64
	for _, v := range c {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return 0
	}
	scaled := make(search.Float32s, len(c))
	for i, v := range c {
		scaled[i] = float32(v / peak)
	}
	return peak * float64(scaled.Magnitude())
}

func approxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < Epsilon
}

func formatComponent(f float32) string {
	return fmt.Sprintf("%g", f)
}
