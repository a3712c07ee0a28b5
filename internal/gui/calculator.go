// Package gui provides the fyne front-end of the vector calculator
package gui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/internal/report"
	"github.com/philipparndt/govec/pkg/vector"
)

// Calculator is the form that collects operands and shows the result
type Calculator struct {
	opts report.Options

	opSelect   *widget.Select
	entryA     *widget.Entry
	entryB     *widget.Entry
	entryK     *widget.Entry
	calcButton *widget.Button
	result     *widget.Label
}

// NewCalculator builds the calculator widgets
func NewCalculator(opts report.Options) *Calculator {
	c := &Calculator{opts: opts}

	var names []string
	for _, op := range calc.Operations() {
		if op != calc.OpQuit {
			names = append(names, op.String())
		}
	}

	c.entryA = widget.NewEntry()
	c.entryA.SetPlaceHolder("1, 2, 3")
	c.entryB = widget.NewEntry()
	c.entryB.SetPlaceHolder("4, 5, 6")
	c.entryK = widget.NewEntry()
	c.entryK.SetPlaceHolder("2")
	for _, entry := range []*widget.Entry{c.entryA, c.entryB, c.entryK} {
		entry.OnSubmitted = func(string) { c.Calculate() }
	}

	c.result = widget.NewLabel("")
	c.result.TextStyle = fyne.TextStyle{Monospace: true}

	c.calcButton = widget.NewButton("Calculate", c.Calculate)
	c.calcButton.Importance = widget.HighImportance

	c.opSelect = widget.NewSelect(names, c.operationChanged)
	c.opSelect.SetSelected(calc.OpAdd.String())

	return c
}

// Content returns the canvas object to place in the window
func (c *Calculator) Content() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Operation", c.opSelect),
		widget.NewFormItem("Vector A", c.entryA),
		widget.NewFormItem("Vector B", c.entryB),
		widget.NewFormItem("Scalar", c.entryK),
	)

	top := container.NewVBox(form, c.calcButton, widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, container.NewVScroll(c.result))
}

// Calculate evaluates the selected operation and shows the result
func (c *Calculator) Calculate() {
	text, err := c.evaluate()
	if err != nil {
		c.result.SetText(fmt.Sprintf("Error: %v", err))
		return
	}
	c.result.SetText(text)
}

func (c *Calculator) evaluate() (string, error) {
	op, err := calc.ParseOperation(c.opSelect.Selected)
	if err != nil {
		return "", err
	}

	req := calc.Request{Op: op}
	if req.A, err = vector.Parse(c.entryA.Text); err != nil {
		return "", fmt.Errorf("vector A: %w", err)
	}
	if op.Operands() == 2 {
		if req.B, err = vector.Parse(c.entryB.Text); err != nil {
			return "", fmt.Errorf("vector B: %w", err)
		}
	}
	if op.NeedsScalar() {
		if req.Scalar, err = strconv.ParseFloat(strings.TrimSpace(c.entryK.Text), 64); err != nil {
			return "", fmt.Errorf("scalar: %w", err)
		}
	}

	res, err := calc.Evaluate(req)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := report.WriteResult(&buf, res, c.opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *Calculator) operationChanged(name string) {
	op, err := calc.ParseOperation(name)
	if err != nil {
		return
	}

	if op.Operands() == 2 {
		c.entryB.Enable()
	} else {
		c.entryB.Disable()
	}
	if op.NeedsScalar() {
		c.entryK.Enable()
	} else {
		c.entryK.Disable()
	}
	c.result.SetText("")
}
