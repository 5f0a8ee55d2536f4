package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/journal"
	"github.com/spf13/cobra"
)

func newPowCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pow <base> <exp>",
		Short: "Time an exponentiation and write the result to a file",
		Long: `Compute base^exp, measure how long it takes and write

    <base>^<exp> = <result>

    time = <duration>

to the answer file. A short summary is printed to standard output.

Examples:
    bigcalc pow 23984871283974891273453245234523453123423409812083759021834072138421093848217395742037404 100
    bigcalc pow 2 100000 --out power.txt
    bigcalc pow -- -3 1001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPow(cmd, opts, args)
		},
	}

	cmd.Flags().StringP("out", "o", "answer.txt", "answer file")
	cmd.Flags().String("journal", "", "record the result in this SQLite journal")
	return cmd
}

func runPow(cmd *cobra.Command, opts *globalOptions, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	base, err := bigint.Parse(args[0])
	if err != nil {
		return fmt.Errorf("base: %w", err)
	}
	exp, err := bigint.Parse(args[1])
	if err != nil {
		return fmt.Errorf("exponent: %w", err)
	}

	logger.Printf("computing %v^%v", base, exp)
	result, elapsed, err := measure(func() (bigint.Int, error) { return base.Pow(exp) })
	if err != nil {
		return err
	}

	answer := fmt.Sprintf("%v^%v = %v\n\ntime = %v", base, exp, result, elapsed)
	if err := os.WriteFile(cfg.Pow.OutFile, []byte(answer), 0644); err != nil {
		return fmt.Errorf("failed to write answer file: %w", err)
	}
	logger.Printf("wrote %s", cfg.Pow.OutFile)

	if cfg.JournalEnabled() {
		if err := recordPow(cmd.Context(), cfg.Journal.Path, base, exp, result, elapsed); err != nil {
			return err
		}
		logger.Printf("recorded in %s", cfg.Journal.Path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v^%v has %d digits, computed in %v\n", base, exp, max(result.Prec(), 1), elapsed)
	return nil
}

// measure runs work and reports how long it took
func measure(work func() (bigint.Int, error)) (bigint.Int, time.Duration, error) {
	start := time.Now()
	z, err := work()
	return z, time.Since(start), err
}

func recordPow(ctx context.Context, path string, base, exp, result bigint.Int, elapsed time.Duration) error {
	j, err := journal.Open(ctx, path)
	if err != nil {
		return err
	}
	defer j.Close()

	_, err = j.RecordPow(ctx, base, exp, result, elapsed)
	return err
}
