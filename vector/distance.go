package vector

import (
	"fmt"
	"math"
)

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// AngleBetween returns the angle in radians between a and b, in [0, π]. It
// returns an error if the vectors have different dimensionality or if either
// vector has zero magnitude.
func AngleBetween(a, b Vector) (float32, error) {
	if a == nil || b == nil || a.Dim() != b.Dim() {
		return 0, mismatch("angle", a, b)
	}
	// acos is steep near ±1, so the cosine is accumulated in float64. Squares
	// of float32 components neither overflow nor underflow there.
	ca, cb := a.Components(), b.Components()
	var dot, na2, nb2 float64
	for i := range ca {
		va := float64(ca[i])
		vb := float64(cb[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("vector: angle between %v and %v: %w", a, b, ErrDegenerateVector)
	}
	// rounding can push the cosine just outside [-1, 1], where acos is NaN
	cos := dot / (math.Sqrt(na2) * math.Sqrt(nb2))
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos)), nil
}

// Distance returns the Euclidean distance between a and b. It returns an
// error if the vectors have different dimensionality.
func Distance(a, b Vector) (float32, error) {
	if a == nil || b == nil || a.Dim() != b.Dim() {
		return 0, mismatch("distance", a, b)
	}
	ca, cb := a.Components(), b.Components()
	diff := make([]float64, len(ca))
	for i := range ca {
		diff[i] = float64(ca[i]) - float64(cb[i])
	}
	return float32(norm(diff...)), nil
}
