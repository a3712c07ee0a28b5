// Package repl implements the interactive, menu driven calculator session
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/internal/report"
	"github.com/philipparndt/govec/pkg/vector"
	"go.uber.org/zap"
)

const retryMessage = "That is not an accepted input please try again"

// Session reads whitespace separated answers from in and writes prompts and
// results to out
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	opts   report.Options
	logger *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithReportOptions sets how results are rendered
func WithReportOptions(opts report.Options) Option {
	return func(s *Session) { s.opts = opts }
}

// New creates a session over in and out
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	s := &Session{
		in:     scanner,
		out:    out,
		opts:   report.Options{Format: report.FormatText, Precision: -1},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the menu loop until the user quits or input ends
func (s *Session) Run() error {
	s.println("Welcome to the vector calculator")
	s.println("What operation would you like to perform today?")

	for {
		op, err := s.readOperation()
		if err != nil {
			return s.finish(err)
		}
		if op == calc.OpQuit {
			break
		}

		if err := s.calculate(op); err != nil {
			return s.finish(err)
		}
		s.println()

		again, err := s.askAgain()
		if err != nil {
			return s.finish(err)
		}
		if !again {
			break
		}
	}
	return s.finish(nil)
}

func (s *Session) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	s.println("Thank you for using this Vector calculator")
	s.println("Goodbye")
	return nil
}

func (s *Session) calculate(op calc.Operation) error {
	s.logger.Debug("operation selected", zap.Stringer("op", op))

	req := calc.Request{Op: op}
	var err error
	if req.A, err = s.readVector("Enter the number of dimensions for your vector"); err != nil {
		return err
	}
	if op.Operands() == 2 {
		if req.B, err = s.readVector("Enter the number of dimensions of your second vector"); err != nil {
			return err
		}
	}
	if op.NeedsScalar() {
		if req.Scalar, err = s.readFloat("Enter the scalar amount"); err != nil {
			return err
		}
	}

	res, err := calc.Evaluate(req)
	if err != nil {
		s.logger.Debug("calculation failed", zap.Stringer("op", op), zap.Error(err))
		s.printf("Error: %v\n", err)
		return nil
	}
	return report.WriteResult(s.out, res, s.opts)
}

func (s *Session) readOperation() (calc.Operation, error) {
	for _, op := range calc.Operations() {
		s.printf("Type %d for %s\n", int(op), op.Description())
	}

	for {
		token, err := s.next()
		if err != nil {
			return 0, err
		}
		op, err := calc.ParseOperation(token)
		if err == nil {
			return op, nil
		}
		s.println(retryMessage)
	}
}

func (s *Session) readVector(prompt string) (*vector.Vector, error) {
	var v *vector.Vector
	s.println(prompt)
	for v == nil {
		token, err := s.next()
		if err != nil {
			return nil, err
		}
		dim, err := strconv.Atoi(token)
		if err != nil {
			s.println(retryMessage)
			continue
		}
		if v, err = vector.New(dim); err != nil {
			s.printf("%v, please try again\n", err)
		}
	}

	for i := 1; i <= v.Dimension(); i++ {
		value, err := s.readFloat(fmt.Sprintf("Input value for X%d", i))
		if err != nil {
			return nil, err
		}
		if err := v.Set(i, value); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (s *Session) readFloat(prompt string) (float64, error) {
	s.println(prompt)
	for {
		token, err := s.next()
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(token, 64)
		if err == nil {
			return value, nil
		}
		s.println(retryMessage)
	}
}

func (s *Session) askAgain() (bool, error) {
	for {
		s.println("Would you like to perform another calculation")
		s.println("Enter 1 for Yes")
		s.println("Enter 2 for No")

		token, err := s.next()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(token) {
		case "1", "y", "yes":
			return true, nil
		case "2", "n", "no":
			return false, nil
		}
		s.println(retryMessage)
		s.println()
	}
}

func (s *Session) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", io.EOF
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
