package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gobasics/pkg/report"
)

// formatEnv overrides the default output format when --format is not given.
const formatEnv = "GOBASICS_FORMAT"

var format report.Format
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gobasics",
	Short: "basic Go mechanics, and a max finder",
	Long: `gobasics runs small demonstrations of Go mechanics (loops, structs,
pointers, slices...) and finds the maximum of a list of integers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("format") {
			return nil
		}
		env, ok := os.LookupEnv(formatEnv)
		if !ok {
			return nil
		}
		if err := format.Set(env); err != nil {
			return fmt.Errorf("%s: %w", formatEnv, err)
		}
		logf(cmd, "format %s taken from %s", format, formatEnv)
		return nil
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gobasics: %v\n", err)
		os.Exit(1)
	}
}

// logf writes a diagnostic line to stderr when --verbose is set.
func logf(cmd *cobra.Command, msg string, args ...any) {
	if !verbose {
		return
	}
	cmd.PrintErrf("gobasics: "+msg+"\n", args...)
}

func init() {
	rootCmd.PersistentFlags().VarP(&format, "format", "f",
		"output format: text or json (default from "+formatEnv+", else text)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print diagnostics to stderr")
}
