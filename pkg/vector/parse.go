package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a vector literal such as "1,2,3", "1 2 3", "[1, 2, 3]" or "(1 2 3)"
func Parse(literal string) (*Vector, error) {
	s := strings.TrimSpace(literal)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty vector literal %q", ErrInvalidDimension, literal)
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component %d %q: %w", i+1, field, err)
		}
		values[i] = value
	}
	return FromComponents(values...)
}
