package cli

import (
	"fmt"
	"time"

	"github.com/govalues/bigint/internal/journal"
	"github.com/spf13/cobra"
)

// historyPreview is the number of leading digits shown for long results
const historyPreview = 20

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded in the journal",
		Long: `List the most recent pow results and check runs recorded in the
SQLite journal given by --journal or the journal.path setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts, limit)
		},
	}

	cmd.Flags().String("journal", "", "SQLite journal to read")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of entries per section")
	return cmd
}

func runHistory(cmd *cobra.Command, opts *globalOptions, limit int) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if !cfg.JournalEnabled() {
		return fmt.Errorf("no journal configured, use --journal")
	}

	ctx := cmd.Context()
	j, err := journal.Open(ctx, cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	pows, err := j.RecentPows(ctx, limit)
	if err != nil {
		return err
	}
	checks, err := j.RecentChecks(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "pow results:")
	for _, p := range pows {
		fmt.Fprintf(out, "  #%d %s  %v^%v = %s (%d digits) in %v\n",
			p.ID, p.CreatedAt.Format(time.DateTime), p.Base, p.Exp, preview(p.Result.String()), p.Result.Prec(), p.Elapsed)
	}
	fmt.Fprintln(out, "check runs:")
	for _, r := range checks {
		fmt.Fprintf(out, "  #%d %s  seed %d: %d checks, %d mismatches in %v\n",
			r.ID, r.CreatedAt.Format(time.DateTime), r.Seed, r.Checks, len(r.Mismatches), r.Elapsed)
		for _, m := range r.Mismatches {
			fmt.Fprintf(out, "    %v\n", m)
		}
	}
	return nil
}

// preview shortens long decimal strings to their leading digits
func preview(s string) string {
	if len(s) <= historyPreview {
		return s
	}
	return s[:historyPreview] + "..."
}
