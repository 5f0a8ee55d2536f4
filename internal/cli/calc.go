package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/govalues/bigint/internal/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [expression ...]",
		Short: "Evaluate expressions in prefix notation",
		Long: `Evaluate expressions written in prefix (Polish) notation, one per
argument, or one per line of standard input when no arguments are given.
Blank lines are skipped. Results of repeated expressions are served from
a cache.

Use -- to pass an expression starting with '-' as an argument.

Examples:
    bigcalc calc "* 10 + 123 456"
    bigcalc calc -- "- ^ 2 64 1"
    echo "^ 3 100" | bigcalc calc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, opts, args)
		},
	}

	cmd.Flags().Int("cache-size", 128, "number of remembered results")
	return cmd
}

func runCalc(cmd *cobra.Command, opts *globalOptions, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	c, err := calc.New(cfg.Calc.CacheSize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	evaluate := func(expr string) error {
		x, err := c.Evaluate(expr)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", strings.TrimSpace(expr), err)
		}
		fmt.Fprintln(out, x)
		return nil
	}

	if len(args) > 0 {
		for _, expr := range args {
			if err := evaluate(expr); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := evaluate(line); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading expressions: %w", err)
		}
	}

	stats := c.Stats()
	logger.Printf("cache: %d hits, %d misses", stats.Hits, stats.Misses)
	return nil
}
