// Package report renders calculation results as text, JSON or YAML
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/pkg/vector"
	"gopkg.in/yaml.v3"
)

// Format is the output format for results
type Format string

const (
	// FormatText is human-readable text (default)
	FormatText Format = "text"
	// FormatJSON is indented JSON for machine consumption
	FormatJSON Format = "json"
	// FormatYAML is a YAML document
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name; the empty string means text
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// Options controls rendering
type Options struct {
	Format Format
	// Precision is the number of digits after the decimal point in text
	// output; negative means the shortest exact representation
	Precision int
}

// Document is the serializable form of one calculation outcome
type Document struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	Operation string              `json:"operation" yaml:"operation"`
	Vector    []float64           `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar    *float64            `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Equal     *bool               `json:"equal,omitempty" yaml:"equal,omitempty"`
	Polar     *vector.PolarReport `json:"polar,omitempty" yaml:"polar,omitempty"`
	Error     string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument converts a result into its serializable form
func NewDocument(res *calc.Result) Document {
	doc := Document{Operation: res.Op.String()}
	switch res.Kind {
	case calc.KindVector:
		doc.Vector = res.Vector.Components()
	case calc.KindScalar:
		scalar := res.Scalar
		doc.Scalar = &scalar
	case calc.KindBool:
		equal := res.Bool
		doc.Equal = &equal
	case calc.KindPolar:
		polar := res.Polar
		doc.Polar = &polar
	}
	return doc
}

// ErrorDocument records a failed calculation
func ErrorDocument(name string, op calc.Operation, err error) Document {
	return Document{Name: name, Operation: op.String(), Error: err.Error()}
}

// WriteResult writes a single result to w
func WriteResult(w io.Writer, res *calc.Result, opts Options) error {
	doc := NewDocument(res)
	switch opts.Format {
	case FormatJSON:
		return encodeJSON(w, doc)
	case FormatYAML:
		return encodeYAML(w, doc)
	default:
		return writeText(w, doc, opts.Precision)
	}
}

// WriteDocuments writes a list of outcomes to w
func WriteDocuments(w io.Writer, docs []Document, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return encodeJSON(w, docs)
	case FormatYAML:
		return encodeYAML(w, docs)
	}

	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if doc.Name != "" {
			fmt.Fprintf(w, "%s (%s)\n", doc.Name, doc.Operation)
		} else {
			fmt.Fprintf(w, "#%d (%s)\n", i+1, doc.Operation)
		}
		if err := writeText(w, doc, opts.Precision); err != nil {
			return err
		}
	}
	return nil
}

// WriteVector lists one component per line
func WriteVector(w io.Writer, components []float64, precision int) error {
	for i, c := range components {
		if _, err := fmt.Fprintf(w, "component %d: %s\n", i+1, FormatNumber(c, precision)); err != nil {
			return err
		}
	}
	return nil
}

// WritePolar lists the distance from the origin followed by the angle per axis
func WritePolar(w io.Writer, p vector.PolarReport, precision int) error {
	if _, err := fmt.Fprintf(w, "Distance from origin = %s\n", FormatNumber(p.Radius, precision)); err != nil {
		return err
	}
	for i, angle := range p.Angles {
		if _, err := fmt.Fprintf(w, "Angle from X%d = %s\n", i+1, FormatNumber(angle, precision)); err != nil {
			return err
		}
	}
	return nil
}

// FormatNumber formats a value with a fixed number of decimals, or the
// shortest exact representation when precision is negative
func FormatNumber(value float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func writeText(w io.Writer, doc Document, precision int) error {
	switch {
	case doc.Error != "":
		_, err := fmt.Fprintf(w, "Error: %s\n", doc.Error)
		return err
	case doc.Vector != nil:
		return WriteVector(w, doc.Vector, precision)
	case doc.Polar != nil:
		return WritePolar(w, *doc.Polar, precision)
	case doc.Equal != nil:
		_, err := fmt.Fprintf(w, "The vectors are equal: %t\n", *doc.Equal)
		return err
	case doc.Scalar != nil:
		label := doc.Operation
		if doc.Operation == calc.OpDot.String() {
			label = "dot product"
		}
		_, err := fmt.Fprintf(w, "The %s = %s\n", label, FormatNumber(*doc.Scalar, precision))
		return err
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
