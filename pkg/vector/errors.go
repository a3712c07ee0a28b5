package vector

import "errors"

// Sentinel errors returned (wrapped) by vector operations
var (
	// ErrInvalidDimension indicates a vector was requested with fewer than one component
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrIndexOutOfRange indicates a component index outside 1..Dimension()
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch indicates operands of incompatible dimension
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
