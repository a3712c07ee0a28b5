package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipparndt/govec/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	err := New(strings.NewReader(input), &out, opts...).Run()
	require.NoError(t, err)
	return out.String()
}

func TestSession_Add(t *testing.T) {
	out := run(t, "1  2 1 2  2 3 4  2")
	assert.Contains(t, out, "Type 1 for addition")
	assert.Contains(t, out, "Type 9 for quit")
	assert.Contains(t, out, "Input value for X2")
	assert.Contains(t, out, "component 1: 4\ncomponent 2: 6\n")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"), out)
}

func TestSession_SubtractNegatesSecondVector(t *testing.T) {
	out := run(t, "2  2 5 7  2 1 2  no")
	assert.Contains(t, out, "component 1: 4\ncomponent 2: 5\n")
}

func TestSession_ScaleAsksForScalar(t *testing.T) {
	out := run(t, "5  3 1 2 3  2  2")
	assert.Contains(t, out, "Enter the scalar amount")
	assert.Contains(t, out, "component 1: 2\ncomponent 2: 4\ncomponent 3: 6\n")
	assert.NotContains(t, out, "second vector")
}

func TestSession_Equals(t *testing.T) {
	out := run(t, "6  3 1 2 3  3 1 2 4  2")
	assert.Contains(t, out, "The vectors are equal: false")
}

func TestSession_PolarAtOrigin(t *testing.T) {
	out := run(t, "polar  2 0 0  2")
	assert.Contains(t, out, "Distance from origin = 0\n")
	assert.NotContains(t, out, "Angle from")
}

func TestSession_RetriesBadMenuInput(t *testing.T) {
	out := run(t, "x 0 10 7  1 5  2")
	assert.Equal(t, 3, strings.Count(out, retryMessage))
	assert.Contains(t, out, "The norm = 5\n")
}

func TestSession_RetriesBadDimensionAndValues(t *testing.T) {
	out := run(t, "7  0 abc 2  3 foo 4  2")
	assert.Contains(t, out, "invalid dimension")
	assert.Equal(t, 2, strings.Count(out, retryMessage))
	assert.Contains(t, out, "The norm = 5\n")
}

func TestSession_HugeDimensionRetries(t *testing.T) {
	out := run(t, "7  9223372036854775807 99999999999999999999 16777217 2  3 4  2")
	assert.Equal(t, 2, strings.Count(out, "exceeds the maximum"))
	assert.Equal(t, 1, strings.Count(out, retryMessage))
	assert.Contains(t, out, "The norm = 5\n")
}

func TestSession_CrossErrorContinues(t *testing.T) {
	out := run(t, "4  2 1 0  2 0 1  1  9")
	assert.Contains(t, out, "Error: cross: dimension mismatch: vectors must be 3-dimensional")
	assert.Equal(t, 2, strings.Count(out, "Type 4 for cross product"))
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"), out)
}

func TestSession_RepeatPromptRetries(t *testing.T) {
	out := run(t, "7  1 3  maybe 1  9")
	assert.Equal(t, 1, strings.Count(out, retryMessage))
	assert.Equal(t, 2, strings.Count(out, "Would you like to perform another calculation"))
}

func TestSession_EndOfInput(t *testing.T) {
	out := run(t, "1 2 1")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"), out)
}

func TestSession_QuitImmediately(t *testing.T) {
	out := run(t, "9")
	assert.NotContains(t, out, "Enter the number of dimensions")
	assert.Contains(t, out, "Thank you for using this Vector calculator")
}

func TestSession_ReportOptions(t *testing.T) {
	out := run(t, "7  2 1 1  2", WithReportOptions(report.Options{Format: report.FormatText, Precision: 3}))
	assert.Contains(t, out, "The norm = 1.414\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSession_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := New(failingReader{}, &out).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
