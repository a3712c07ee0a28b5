// Package batch evaluates a YAML file of calculations
package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/internal/report"
	"github.com/philipparndt/govec/pkg/vector"
	"gopkg.in/yaml.v3"
)

// File is a parsed batch file
type File struct {
	Calculations []Calculation `yaml:"calculations"`
}

// Calculation is one entry of a batch file
type Calculation struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	A      []float64 `yaml:"a"`
	B      []float64 `yaml:"b"`
	Scalar *float64  `yaml:"scalar"`
}

// Outcome is the result of a single calculation; exactly one of Result and Err is set
type Outcome struct {
	Name   string
	Op     calc.Operation
	Result *calc.Result
	Err    error
}

// Load reads and parses the batch file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a batch document
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(f.Calculations) == 0 {
		return nil, fmt.Errorf("batch file contains no calculations")
	}
	return &f, nil
}

// Run evaluates every calculation in order; a failing calculation is
// recorded in its outcome and does not stop the others
func Run(f *File) []Outcome {
	outcomes := make([]Outcome, 0, len(f.Calculations))
	for i, c := range f.Calculations {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		outcome := Outcome{Name: name}
		outcome.Op, outcome.Result, outcome.Err = evaluate(c)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Failed counts outcomes that carry an error
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Write renders outcomes with the given options
func Write(w io.Writer, outcomes []Outcome, opts report.Options) error {
	docs := make([]report.Document, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			docs = append(docs, report.ErrorDocument(o.Name, o.Op, o.Err))
			continue
		}
		doc := report.NewDocument(o.Result)
		doc.Name = o.Name
		docs = append(docs, doc)
	}
	return report.WriteDocuments(w, docs, opts)
}

func evaluate(c Calculation) (calc.Operation, *calc.Result, error) {
	op, err := calc.ParseOperation(c.Op)
	if err != nil {
		return 0, nil, err
	}
	if op == calc.OpQuit {
		return op, nil, fmt.Errorf("%w: %q is not a calculation", calc.ErrUnknownOperation, c.Op)
	}

	req := calc.Request{Op: op}
	if op.NeedsScalar() {
		if c.Scalar == nil {
			return op, nil, fmt.Errorf("%w: field %q is empty", calc.ErrMissingOperand, "scalar")
		}
		req.Scalar = *c.Scalar
	}
	if req.A, err = operand("a", c.A); err != nil {
		return op, nil, err
	}
	if op.Operands() == 2 {
		if req.B, err = operand("b", c.B); err != nil {
			return op, nil, err
		}
	}

	res, err := calc.Evaluate(req)
	return op, res, err
}

func operand(field string, values []float64) (*vector.Vector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: field %q is empty", calc.ErrMissingOperand, field)
	}
	return vector.FromComponents(values...)
}
