package scenario

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/viant/vecmath/vector"
)

// ErrNilScenario is returned by Run when no scenario is given.
var ErrNilScenario = errors.New("scenario: scenario is nil")

// Result holds everything computed for one pair. Operations that violated
// the vector contract leave their field zero and record the error under the
// operation name.
type Result struct {
	Name       string
	A, B       vector.Vector
	MagnitudeA float32
	MagnitudeB float32
	Dot        float32
	Sum        vector.Vector
	Difference vector.Vector
	Angle      float32
	Distance   float32
	Cross      *vector.Vector3D
	Equal      bool
	Errors     map[string]error
}

func (r *Result) record(op string, err error) bool {
	if err == nil {
		return false
	}
	if r.Errors == nil {
		r.Errors = make(map[string]error)
	}
	r.Errors[op] = err
	return true
}

// Runner evaluates scenarios through the vector.Vector contract.
type Runner struct {
	logger *zap.Logger
}

// NewRunner returns a Runner logging to logger; a nil logger discards output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run evaluates every pair in order. It stops early when ctx is done or a
// pair has an unsupported component count.
func (r *Runner) Run(ctx context.Context, s *Scenario) ([]Result, error) {
	if s == nil {
		return nil, ErrNilScenario
	}
	results := make([]Result, 0, len(s.Pairs))
	for i, pair := range s.Pairs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		name := pair.Name
		if name == "" {
			name = fmt.Sprintf("pair-%d", i)
		}
		a, err := vector.FromComponents(pair.A...)
		if err != nil {
			return results, fmt.Errorf("scenario: %s: operand a: %w", name, err)
		}
		b, err := vector.FromComponents(pair.B...)
		if err != nil {
			return results, fmt.Errorf("scenario: %s: operand b: %w", name, err)
		}
		res := r.evaluate(name, a, b)
		r.log(&res)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) evaluate(name string, a, b vector.Vector) Result {
	res := Result{
		Name:       name,
		A:          a,
		B:          b,
		MagnitudeA: a.Magnitude(),
		MagnitudeB: b.Magnitude(),
		Equal:      a.Equal(b),
	}
	var err error
	res.Dot, err = a.Dot(b)
	res.record("dot", err)
	res.Sum, err = a.Add(b)
	res.record("add", err)
	res.Difference, err = a.Sub(b)
	res.record("sub", err)
	res.Angle, err = vector.AngleBetween(a, b)
	res.record("angle", err)
	res.Distance, err = vector.Distance(a, b)
	res.record("distance", err)
	if c, err := a.Cross(b); !res.record("cross", err) {
		res.Cross = &c
	}
	return res
}

func (r *Runner) log(res *Result) {
	fields := []zap.Field{
		zap.String("pair", res.Name),
		zap.Stringer("a", res.A),
		zap.Stringer("b", res.B),
		zap.Float32("magnitude_a", res.MagnitudeA),
		zap.Float32("magnitude_b", res.MagnitudeB),
		zap.Bool("equal", res.Equal),
	}
	if _, failed := res.Errors["dot"]; !failed {
		fields = append(fields, zap.Float32("dot", res.Dot))
	}
	if _, failed := res.Errors["angle"]; !failed {
		fields = append(fields, zap.Float32("angle", res.Angle))
	}
	if res.Cross != nil {
		fields = append(fields, zap.Stringer("cross", res.Cross))
	}
	r.logger.Debug("pair evaluated", fields...)
	for op, err := range res.Errors {
		r.logger.Warn("operation rejected",
			zap.String("pair", res.Name),
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
