package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when an operation needs both operands to
	// share dimensionality and they do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateVector is returned when a zero-magnitude vector is
	// normalized or used to compute an angle.
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotApplicable is returned by Cross on two-dimensional vectors.
	ErrNotApplicable = errors.New("cross product not applicable")

	// ErrUnsupportedDimension is returned by FromComponents for component
	// counts other than 2 or 3.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
)

func mismatch(op string, a, b Vector) error {
	return fmt.Errorf("vector: %s: %w: %d vs %d", op, ErrDimensionMismatch, dimOf(a), dimOf(b))
}

func dimOf(v Vector) int {
	if v == nil {
		return 0
	}
	return v.Dim()
}
