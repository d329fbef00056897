package vector

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

var _ Vector = Vector2D{}

// Vector2D is a two-component vector. The zero value is the zero vector.
type Vector2D struct {
	X, Y float32
}

// New2D returns the vector (x, y).
func New2D(x, y float32) Vector2D {
	return Vector2D{X: x, Y: y}
}

// From2D converts an f32.Vec2 into a Vector2D.
func From2D(a f32.Vec2) Vector2D {
	return Vector2D{X: a[0], Y: a[1]}
}

// Array returns the components as an f32.Vec2.
func (v Vector2D) Array() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Dim returns 2.
func (v Vector2D) Dim() int { return 2 }

// Components returns a fresh slice of the components.
func (v Vector2D) Components() []float32 { return []float32{v.X, v.Y} }

// Magnitude returns the Euclidean norm.
func (v Vector2D) Magnitude() float32 {
	return float32(norm(float64(v.X), float64(v.Y)))
}

// Normalize returns the unit vector with the same direction. The zero
// vector fails with ErrDegenerateVector.
func (v Vector2D) Normalize() (Vector, error) {
	m := norm(float64(v.X), float64(v.Y))
	if m == 0 {
		return nil, fmt.Errorf("vector: normalize %v: %w", v, ErrDegenerateVector)
	}
	return Vector2D{X: float32(float64(v.X) / m), Y: float32(float64(v.Y) / m)}, nil
}

// Dot returns the inner product; other must be a Vector2D.
func (v Vector2D) Dot(other Vector) (float32, error) {
	o, ok := as2D(other)
	if !ok {
		return 0, mismatch("dot", v, other)
	}
	return v.X*o.X + v.Y*o.Y, nil
}

// Cross always fails: the cross product is not defined in two dimensions.
func (v Vector2D) Cross(Vector) (Vector3D, error) {
	return Vector3D{}, fmt.Errorf("vector: cross of 2D vector: %w", ErrNotApplicable)
}

// Add returns v + other.
func (v Vector2D) Add(other Vector) (Vector, error) {
	o, ok := as2D(other)
	if !ok {
		return nil, mismatch("add", v, other)
	}
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}, nil
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector) (Vector, error) {
	o, ok := as2D(other)
	if !ok {
		return nil, mismatch("sub", v, other)
	}
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}, nil
}

// Scale multiplies every component by s.
func (v Vector2D) Scale(s float32) Vector {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Div divides every component by s; s == 0 fails with ErrDivisionByZero.
func (v Vector2D) Div(s float32) (Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("vector: divide %v: %w", v, ErrDivisionByZero)
	}
	return Vector2D{X: v.X / s, Y: v.Y / s}, nil
}

// Negate returns -v.
func (v Vector2D) Negate() Vector {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Equal reports whether other is a Vector2D whose components are each within
// Epsilon of v's.
func (v Vector2D) Equal(other Vector) bool {
	o, ok := as2D(other)
	if !ok {
		return false
	}
	return approxEqual(v.X, o.X) && approxEqual(v.Y, o.Y)
}

// NotEqual is the negation of Equal.
func (v Vector2D) NotEqual(other Vector) bool {
	return !v.Equal(other)
}

// String renders the vector as "(x, y)" for diagnostics.
func (v Vector2D) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ")"
}

func (Vector2D) sealed() {}

func as2D(v Vector) (Vector2D, bool) {
	switch t := v.(type) {
	case Vector2D:
		return t, true
	case *Vector2D:
		if t == nil {
			return Vector2D{}, false
		}
		return *t, true
	}
	return Vector2D{}, false
}
