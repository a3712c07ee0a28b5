package calc

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/vector"
)

// Kind identifies which field of a Result is populated
type Kind string

const (
	KindVector Kind = "vector"
	KindScalar Kind = "scalar"
	KindBool   Kind = "bool"
	KindPolar  Kind = "polar"
)

// Request is a single calculation
type Request struct {
	Op     Operation
	A      *vector.Vector
	B      *vector.Vector
	Scalar float64
}

// Result holds the outcome of a calculation
type Result struct {
	Op     Operation
	Kind   Kind
	Vector *vector.Vector
	Scalar float64
	Bool   bool
	Polar  vector.PolarReport
}

// Evaluate runs the requested operation
func Evaluate(req Request) (*Result, error) {
	if req.Op == OpQuit {
		return nil, ErrQuit
	}
	if req.Op.Operands() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperation, req.Op)
	}
	if req.A == nil || (req.Op.Operands() == 2 && req.B == nil) {
		return nil, fmt.Errorf("%w: %s needs %d vector(s)", ErrMissingOperand, req.Op, req.Op.Operands())
	}

	result := &Result{Op: req.Op}
	var err error

	switch req.Op {
	case OpAdd:
		result.Kind = KindVector
		result.Vector, err = req.A.Add(req.B)
	case OpSubtract:
		result.Kind = KindVector
		result.Vector, err = req.A.Sub(req.B)
	case OpDot:
		result.Kind = KindScalar
		result.Scalar, err = req.A.Dot(req.B)
	case OpCross:
		result.Kind = KindVector
		result.Vector, err = req.A.Cross(req.B)
	case OpScale:
		result.Kind = KindVector
		result.Vector = req.A.Scale(req.Scalar)
	case OpEquals:
		result.Kind = KindBool
		result.Bool = req.A.Equals(req.B)
	case OpNorm:
		result.Kind = KindScalar
		result.Scalar = req.A.Norm()
	case OpPolar:
		result.Kind = KindPolar
		result.Polar = req.A.Polar()
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Op, err)
	}
	return result, nil
}
