package vector

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

var _ Vector = Vector3D{}

// Vector3D is a three-component vector. The zero value is the zero vector.
type Vector3D struct {
	X, Y, Z float32
}

// New3D returns the vector (x, y, z).
func New3D(x, y, z float32) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// From3D converts an f32.Vec3 into a Vector3D.
func From3D(a f32.Vec3) Vector3D {
	return Vector3D{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as an f32.Vec3.
func (v Vector3D) Array() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Dim returns 3.
func (v Vector3D) Dim() int { return 3 }

// Components returns a fresh slice of the components.
func (v Vector3D) Components() []float32 { return []float32{v.X, v.Y, v.Z} }

// Magnitude returns the Euclidean norm.
func (v Vector3D) Magnitude() float32 {
	return float32(norm(float64(v.X), float64(v.Y), float64(v.Z)))
}

// Normalize returns the unit vector with the same direction. The zero
// vector fails with ErrDegenerateVector.
func (v Vector3D) Normalize() (Vector, error) {
	m := norm(float64(v.X), float64(v.Y), float64(v.Z))
	if m == 0 {
		return nil, fmt.Errorf("vector: normalize %v: %w", v, ErrDegenerateVector)
	}
	return Vector3D{
		X: float32(float64(v.X) / m),
		Y: float32(float64(v.Y) / m),
		Z: float32(float64(v.Z) / m),
	}, nil
}

// Dot returns the inner product; other must be a Vector3D.
func (v Vector3D) Dot(other Vector) (float32, error) {
	o, ok := as3D(other)
	if !ok {
		return 0, mismatch("dot", v, other)
	}
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z, nil
}

// Cross returns v × other. A non-3D operand fails with ErrDimensionMismatch.
func (v Vector3D) Cross(other Vector) (Vector3D, error) {
	o, ok := as3D(other)
	if !ok {
		return Vector3D{}, mismatch("cross", v, other)
	}
	return Cross(v, o), nil
}

// Add returns v + other.
func (v Vector3D) Add(other Vector) (Vector, error) {
	o, ok := as3D(other)
	if !ok {
		return nil, mismatch("add", v, other)
	}
	return Vector3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}, nil
}

// Sub returns v - other.
func (v Vector3D) Sub(other Vector) (Vector, error) {
	o, ok := as3D(other)
	if !ok {
		return nil, mismatch("sub", v, other)
	}
	return Vector3D{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}, nil
}

// Scale multiplies every component by s.
func (v Vector3D) Scale(s float32) Vector {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides every component by s; s == 0 fails with ErrDivisionByZero.
func (v Vector3D) Div(s float32) (Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("vector: divide %v: %w", v, ErrDivisionByZero)
	}
	return Vector3D{X: v.X / s, Y: v.Y / s, Z: v.Z / s}, nil
}

// Negate returns -v.
func (v Vector3D) Negate() Vector {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Equal reports whether other is a Vector3D whose components are each within
// Epsilon of v's.
func (v Vector3D) Equal(other Vector) bool {
	o, ok := as3D(other)
	if !ok {
		return false
	}
	return approxEqual(v.X, o.X) && approxEqual(v.Y, o.Y) && approxEqual(v.Z, o.Z)
}

// NotEqual is the negation of Equal.
func (v Vector3D) NotEqual(other Vector) bool {
	return !v.Equal(other)
}

// String renders the vector as "(x, y, z)" for diagnostics.
func (v Vector3D) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ", " + formatComponent(v.Z) + ")"
}

func (Vector3D) sealed() {}

func as3D(v Vector) (Vector3D, bool) {
	switch t := v.(type) {
	case Vector3D:
		return t, true
	case *Vector3D:
		if t == nil {
			return Vector3D{}, false
		}
		return *t, true
	}
	return Vector3D{}, false
}
