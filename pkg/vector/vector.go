// Package vector implements an N-dimensional vector of float64 components
// addressed with 1-based indices
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDimension is the largest number of components a vector may hold
const MaxDimension = 1 << 24

// Vector represents a point or direction in N-dimensional space
type Vector struct {
	components []float64
}

// New creates a zero vector with the given dimension
func New(dimension int) (*Vector, error) {
	return NewFilled(dimension, 0)
}

// NewFilled creates a vector with every component set to fill
func NewFilled(dimension int, fill float64) (*Vector, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: a vector must have dimension greater than 0, got %d", ErrInvalidDimension, dimension)
	}
	if dimension > MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d exceeds the maximum of %d", ErrInvalidDimension, dimension, MaxDimension)
	}

	components := make([]float64, dimension)
	for i := range components {
		components[i] = fill
	}
	return &Vector{components: components}, nil
}

// FromComponents creates a vector holding a copy of values
func FromComponents(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: a vector must have at least one component", ErrInvalidDimension)
	}
	if len(values) > MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d exceeds the maximum of %d", ErrInvalidDimension, len(values), MaxDimension)
	}

	components := make([]float64, len(values))
	copy(components, values)
	return &Vector{components: components}, nil
}

// Dimension returns the number of components
func (v *Vector) Dimension() int {
	return len(v.components)
}

// Get returns the component at the 1-based index
func (v *Vector) Get(index int) (float64, error) {
	if index < 1 || index > v.Dimension() {
		return 0, fmt.Errorf("%w: component %d of a %d-dimensional vector", ErrIndexOutOfRange, index, v.Dimension())
	}
	return v.components[index-1], nil
}

// Set writes the component at the 1-based index, growing the vector when index is
// past the last component; the components between the old end and index are zero
func (v *Vector) Set(index int, value float64) error {
	if index < 1 {
		return fmt.Errorf("%w: component %d, indices start at 1", ErrIndexOutOfRange, index)
	}
	if index > MaxDimension {
		return fmt.Errorf("%w: component %d exceeds the maximum dimension of %d", ErrIndexOutOfRange, index, MaxDimension)
	}

	if index > v.Dimension() {
		grown := make([]float64, index)
		copy(grown, v.components)
		v.components = grown
	}
	v.components[index-1] = value
	return nil
}

// Components returns a copy of the components in order
func (v *Vector) Components() []float64 {
	out := make([]float64, len(v.components))
	copy(out, v.components)
	return out
}

// Add returns the sum of two vectors
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.sameDimension(other, "addition"); err != nil {
		return nil, err
	}

	result := make([]float64, len(v.components))
	for i := range result {
		result[i] = v.components[i] + other.components[i]
	}
	return &Vector{components: result}, nil
}

// Negate returns the vector with every component negated
func (v *Vector) Negate() *Vector {
	return v.Scale(-1)
}

// Sub returns the difference between two vectors
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.sameDimension(other, "subtraction"); err != nil {
		return nil, err
	}
	return v.Add(other.Negate())
}

// Dot returns the dot product of two vectors
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := v.sameDimension(other, "dot product"); err != nil {
		return 0, err
	}

	var sum float64
	for i, c := range v.components {
		sum += c * other.components[i]
	}
	return sum, nil
}

// Cross returns the cross product of two 3-dimensional vectors
func (v *Vector) Cross(other *Vector) (*Vector, error) {
	if v.Dimension() != 3 || other.Dimension() != 3 {
		return nil, fmt.Errorf("%w: vectors must be 3-dimensional to perform cross product, got %d and %d",
			ErrDimensionMismatch, v.Dimension(), other.Dimension())
	}

	a, b := v.components, other.components
	return &Vector{components: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Scale multiplies the vector by a scalar
func (v *Vector) Scale(k float64) *Vector {
	result := make([]float64, len(v.components))
	for i, c := range v.components {
		result[i] = c * k
	}
	return &Vector{components: result}
}

// Equals reports whether both vectors have the same dimension and exactly equal components
func (v *Vector) Equals(other *Vector) bool {
	if v.Dimension() != other.Dimension() {
		return false
	}
	for i, c := range v.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean length of the vector
func (v *Vector) Norm() float64 {
	dot, _ := v.Dot(v)
	return math.Sqrt(dot)
}

// String returns the components in brackets, e.g. [1 2 3]
func (v *Vector) String() string {
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (v *Vector) sameDimension(other *Vector, operation string) error {
	if v.Dimension() != other.Dimension() {
		return fmt.Errorf("%w: vectors must be of same dimension to perform %s, got %d and %d",
			ErrDimensionMismatch, operation, v.Dimension(), other.Dimension())
	}
	return nil
}
