package cli

import (
	"fmt"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Evaluate a binary expression",
		Long: `Evaluate a single binary expression and print the result.

Supported operators:
    +  addition
    -  subtraction
    *  multiplication
    /  division truncated towards zero
    %  remainder, with the sign of x
    ^  exponentiation, y must not be negative

Flags are not parsed, so negative operands can be passed as they are.

Examples:
    bigcalc eval 123 + -23
    bigcalc eval -7 / 2
    bigcalc eval 2 ^ 100`,
		DisableFlagParsing: true,
		Args:               cobra.ExactArgs(3),
		RunE:               runEval,
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	x, err := bigint.Parse(args[0])
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	op := args[1]
	if !calc.IsOperator(op) {
		return fmt.Errorf("unknown operator %q", op)
	}
	y, err := bigint.Parse(args[2])
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	z, err := calc.Apply(x, op, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), z)
	return nil
}
