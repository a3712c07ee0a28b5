package main

import (
	"fmt"

	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/internal/report"
	"github.com/philipparndt/govec/pkg/vector"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var operationHelp = map[calc.Operation]struct {
	short   string
	aliases []string
	example string
}{
	calc.OpAdd:      {"Add two vectors", nil, "govec add --a 1,2,3 --b 4,5,6"},
	calc.OpSubtract: {"Subtract the second vector from the first", []string{"sub"}, "govec sub --a 5,7,9 --b 1,2,3"},
	calc.OpDot:      {"Dot product of two vectors", nil, "govec dot --a 1,0,0 --b 0,1,0"},
	calc.OpCross:    {"Cross product of two 3-dimensional vectors", nil, "govec cross --a 1,0,0 --b 0,1,0"},
	calc.OpScale:    {"Multiply a vector by a scalar", nil, "govec scale --a 1,2,3 --k 2"},
	calc.OpEquals:   {"Check whether two vectors are exactly equal", []string{"eq"}, "govec equals --a 1,2 --b 1,2"},
	calc.OpNorm:     {"Euclidean norm of a vector", nil, "govec norm --a 3,4"},
	calc.OpPolar:    {"Distance from origin and angle from each axis", nil, "govec polar --a 1,1,0"},
}

func (c *cli) newOperationCmd(op calc.Operation) *cobra.Command {
	var a, b []float64
	var k float64

	help := operationHelp[op]
	cmd := &cobra.Command{
		Use:     op.String(),
		Short:   help.short,
		Aliases: help.aliases,
		Example: "  " + help.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := calc.Request{Op: op, Scalar: k}
			var err error
			if req.A, err = vector.FromComponents(a...); err != nil {
				return fmt.Errorf("vector a: %w", err)
			}
			if op.Operands() == 2 {
				if req.B, err = vector.FromComponents(b...); err != nil {
					return fmt.Errorf("vector b: %w", err)
				}
			}

			c.logger.Debug("evaluating",
				zap.Stringer("op", op),
				zap.Stringer("a", req.A),
				zap.Float64("k", k),
			)
			res, err := calc.Evaluate(req)
			if err != nil {
				return err
			}
			return report.WriteResult(cmd.OutOrStdout(), res, c.opts)
		},
	}

	cmd.Flags().Float64SliceVar(&a, "a", nil, "first vector, comma separated (use --a=-1,2 for a leading minus)")
	_ = cmd.MarkFlagRequired("a")
	if op.Operands() == 2 {
		cmd.Flags().Float64SliceVar(&b, "b", nil, "second vector, comma separated")
		_ = cmd.MarkFlagRequired("b")
	}
	if op.NeedsScalar() {
		cmd.Flags().Float64Var(&k, "k", 1, "scalar factor")
		_ = cmd.MarkFlagRequired("k")
	}

	return cmd
}
