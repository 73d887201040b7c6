package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gobasics/pkg/maxfind"
	"github.com/amirkhaki/gobasics/pkg/report"
)

// ErrEmptyInput is returned by max --strict when no integers were given.
var ErrEmptyInput = errors.New("empty input")

// maxCmd represents the max command
var maxCmd = &cobra.Command{
	Use:   "max [ints...]",
	Short: "print the maximum of a list of integers",
	Long: `Print the maximum of the given integers. Values may be separated by
spaces or commas. With no arguments, or with --stdin, integers are read from
standard input. Put -- before negative numbers: gobasics max -- -10 -3 -7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := report.ParseInts(args)
		if err != nil {
			return err
		}
		if len(args) == 0 || readStdin {
			more, err := report.ReadInts(cmd.InOrStdin())
			if err != nil {
				return err
			}
			input = append(input, more...)
		}
		logf(cmd, "read %d integers", len(input))

		res := maxfind.FindMax(input)
		if strict && !res.IsPresent() {
			return ErrEmptyInput
		}

		enc := report.NewEncoder(cmd.OutOrStdout(), format)
		return errors.Join(enc.WriteMax(input, res), enc.Flush())
	},
}

var readStdin bool
var strict bool

func init() {
	rootCmd.AddCommand(maxCmd)

	maxCmd.Flags().BoolVarP(&readStdin, "stdin", "s", false,
		"also read integers from standard input")
	maxCmd.Flags().BoolVar(&strict, "strict", false,
		"fail when there are no integers")
}
