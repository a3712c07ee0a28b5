package calc

import (
	"testing"

	"github.com/philipparndt/govec/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, values ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.FromComponents(values...)
	require.NoError(t, err)
	return v
}

func TestParseOperation(t *testing.T) {
	cases := map[string]Operation{
		"1":        OpAdd,
		"2":        OpSubtract,
		"9":        OpQuit,
		"add":      OpAdd,
		"Sub":      OpSubtract,
		"subtract": OpSubtract,
		" cross ":  OpCross,
		"eq":       OpEquals,
		"polar":    OpPolar,
	}
	for input, want := range cases {
		got, err := ParseOperation(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, bad := range []string{"0", "10", "divide", ""} {
		_, err := ParseOperation(bad)
		assert.ErrorIs(t, err, ErrUnknownOperation, bad)
	}
}

func TestOperationsMenuOrder(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 9)
	for i, op := range ops {
		assert.Equal(t, Operation(i+1), op)
		assert.NotEmpty(t, op.Description())
	}
	assert.Equal(t, 2, OpCross.Operands())
	assert.Equal(t, 1, OpPolar.Operands())
	assert.True(t, OpScale.NeedsScalar())
	assert.False(t, OpAdd.NeedsScalar())
}

func TestEvaluateVectorResults(t *testing.T) {
	a := vec(t, 1, 2, 3)
	b := vec(t, 4, 5, 6)

	res, err := Evaluate(Request{Op: OpAdd, A: a, B: b})
	require.NoError(t, err)
	assert.Equal(t, KindVector, res.Kind)
	assert.Equal(t, []float64{5, 7, 9}, res.Vector.Components())

	res, err = Evaluate(Request{Op: OpSubtract, A: b, B: a})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, res.Vector.Components())

	res, err = Evaluate(Request{Op: OpCross, A: vec(t, 1, 0, 0), B: vec(t, 0, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, res.Vector.Components())

	res, err = Evaluate(Request{Op: OpScale, A: a, Scalar: 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, res.Vector.Components())
}

func TestEvaluateScalarResults(t *testing.T) {
	res, err := Evaluate(Request{Op: OpDot, A: vec(t, 1, 2, 3), B: vec(t, 4, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, KindScalar, res.Kind)
	assert.InDelta(t, 32.0, res.Scalar, 1e-10)

	res, err = Evaluate(Request{Op: OpNorm, A: vec(t, 3, 4)})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Scalar, 1e-10)

	res, err = Evaluate(Request{Op: OpEquals, A: vec(t, 1, 2), B: vec(t, 1, 3)})
	require.NoError(t, err)
	assert.Equal(t, KindBool, res.Kind)
	assert.False(t, res.Bool)

	res, err = Evaluate(Request{Op: OpPolar, A: vec(t, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, KindPolar, res.Kind)
	assert.Zero(t, res.Polar.Radius)
	assert.Empty(t, res.Polar.Angles)
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate(Request{Op: OpAdd, A: vec(t, 1, 2), B: vec(t, 1, 2, 3)})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = Evaluate(Request{Op: OpCross, A: vec(t, 1, 2), B: vec(t, 3, 4)})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "3-dimensional")

	_, err = Evaluate(Request{Op: OpDot, A: vec(t, 1)})
	assert.ErrorIs(t, err, ErrMissingOperand)

	_, err = Evaluate(Request{Op: OpQuit})
	assert.ErrorIs(t, err, ErrQuit)

	_, err = Evaluate(Request{Op: Operation(42), A: vec(t, 1)})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
