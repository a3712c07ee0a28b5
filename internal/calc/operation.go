// Package calc maps calculator operations onto the vector core
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operation is one entry of the calculator menu
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpDot
	OpCross
	OpScale
	OpEquals
	OpNorm
	OpPolar
	OpQuit
)

var (
	// ErrUnknownOperation indicates an operation name or menu key that is not recognized
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingOperand indicates a request without the vectors its operation needs
	ErrMissingOperand = errors.New("missing operand")

	// ErrQuit is returned when the quit operation is evaluated
	ErrQuit = errors.New("quit")
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpDot:      "dot",
	OpCross:    "cross",
	OpScale:    "scale",
	OpEquals:   "equals",
	OpNorm:     "norm",
	OpPolar:    "polar",
	OpQuit:     "quit",
}

var operationAliases = map[string]Operation{
	"sub":  OpSubtract,
	"eq":   OpEquals,
	"exit": OpQuit,
}

// Operations lists every operation in menu order
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpDot, OpCross, OpScale, OpEquals, OpNorm, OpPolar, OpQuit}
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// Description returns the menu text for the operation
func (o Operation) Description() string {
	switch o {
	case OpAdd:
		return "addition"
	case OpSubtract:
		return "subtraction"
	case OpDot:
		return "dot product"
	case OpCross:
		return "cross product"
	case OpScale:
		return "scalar multiplication"
	case OpEquals:
		return "check if they are equal"
	case OpNorm:
		return "calculate norm"
	case OpPolar:
		return "convert to polar coordinates"
	case OpQuit:
		return "quit"
	}
	return o.String()
}

// Operands returns how many vectors the operation consumes
func (o Operation) Operands() int {
	switch o {
	case OpAdd, OpSubtract, OpDot, OpCross, OpEquals:
		return 2
	case OpScale, OpNorm, OpPolar:
		return 1
	}
	return 0
}

// NeedsScalar reports whether the operation takes a scalar
func (o Operation) NeedsScalar() bool {
	return o == OpScale
}

// ParseOperation accepts a menu key ("1".."9") or an operation name
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(key); err == nil {
		op := Operation(n)
		if _, ok := operationNames[op]; ok {
			return op, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}

	for op, name := range operationNames {
		if name == key {
			return op, nil
		}
	}
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}
