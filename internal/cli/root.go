package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/govalues/bigint/internal/config"
	"github.com/spf13/cobra"
)

// version of the bigcalc binary
const version = "0.1.0"

// globalOptions holds the flags shared by all commands
type globalOptions struct {
	configFile string
	verbose    bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc - arbitrary-precision integer calculator",
		Long: `bigcalc evaluates expressions over signed integers of unbounded size,
times large exponentiations and cross-checks the arithmetic against
independent implementations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "configuration file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(
		newEvalCmd(),
		newCalcCmd(opts),
		newPowCmd(opts),
		newCheckCmd(opts),
		newHistoryCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration for cmd, with the flags of cmd
// taking precedence over the file and the environment.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the progress logger of a command.
// Progress is only reported in verbose mode.
func newLogger(cmd *cobra.Command, cfg *config.Config) *log.Logger {
	var w io.Writer = io.Discard
	if cfg.Verbose {
		w = cmd.ErrOrStderr()
	}
	return log.New(w, "bigcalc: ", log.LstdFlags)
}
