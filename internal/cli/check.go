package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/govalues/bigint/internal/crosscheck"
	"github.com/govalues/bigint/internal/journal"
	"github.com/spf13/cobra"
)

// errMismatches is returned when the check found at least one mismatch
var errMismatches = errors.New("arithmetic mismatches found")

func newCheckCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check the arithmetic on random operands",
		Long: `Run randomized differential tests of + - * / % ^.

Every iteration checks each operator twice: on operands drawn from
[-range, range) against native int64 arithmetic, and on operands of up
to --digits decimal digits against math/big. Mismatches are written to
the errors file, one per line, and the command fails if there are any.

Examples:
    bigcalc check
    bigcalc check --iterations 100000 --workers 8
    bigcalc check --digits 200 --seed 42 --errors mismatches.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().Int("iterations", 10000, "number of iterations")
	cmd.Flags().Int64("range", 10000, "operands of the native phase are drawn from [-range, range)")
	cmd.Flags().Int("digits", 40, "maximum operand length of the long phase, 0 disables it")
	cmd.Flags().Int64("seed", 0, "random seed, 0 picks one")
	cmd.Flags().Int("workers", 0, "number of concurrent workers (default number of CPUs)")
	cmd.Flags().String("errors", "errors.txt", "file receiving mismatches")
	cmd.Flags().String("journal", "", "record the run in this SQLite journal")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	runner, err := crosscheck.New(crosscheck.Options{
		Iterations: cfg.Check.Iterations,
		Range:      cfg.Check.Range,
		Digits:     cfg.Check.Digits,
		Seed:       cfg.Check.Seed,
		Workers:    cfg.Check.Workers,
	}, logger)
	if err != nil {
		return err
	}

	file, err := os.Create(cfg.Check.ErrorsFile)
	if err != nil {
		return fmt.Errorf("failed to create errors file: %w", err)
	}
	defer file.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Printf("checking %d iterations on %d workers, seed %d", cfg.Check.Iterations, cfg.Check.Workers, runner.Seed())
	report, err := runner.Run(ctx, file)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close errors file: %w", err)
	}

	if cfg.JournalEnabled() {
		if err := recordCheck(cmd.Context(), cfg.Journal.Path, report); err != nil {
			return err
		}
		logger.Printf("recorded in %s", cfg.Journal.Path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seed %d: %d checks, %d mismatches in %v\n",
		report.Seed, report.Checks, len(report.Mismatches), report.Elapsed)

	if !report.Passed() {
		return fmt.Errorf("%d mismatches, see %s: %w", len(report.Mismatches), cfg.Check.ErrorsFile, errMismatches)
	}
	return nil
}

func recordCheck(ctx context.Context, path string, report crosscheck.Report) error {
	j, err := journal.Open(ctx, path)
	if err != nil {
		return err
	}
	defer j.Close()

	_, err = j.RecordCheck(ctx, report)
	return err
}
