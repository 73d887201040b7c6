package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/gobasics/pkg/lessons"
	"github.com/amirkhaki/gobasics/pkg/report"
)

// lessonCmd represents the lesson command
var lessonCmd = &cobra.Command{
	Use:   "lesson <kind>...",
	Short: "run one or more lessons",
	Long:  `Run the named lessons in the order given. See "gobasics lessons" for the list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var selected []lessons.Lesson
		if runAll {
			selected = lessons.All()
		}
		for _, name := range args {
			k, err := lessons.ParseKind(name)
			if err != nil {
				return err
			}
			l, ok := lessons.Lookup(k)
			if !ok {
				return fmt.Errorf("%w %q", lessons.ErrUnknownKind, name)
			}
			selected = append(selected, l)
		}
		if len(selected) == 0 {
			return errors.New("no lesson given (name one or pass --all)")
		}

		enc := report.NewEncoder(cmd.OutOrStdout(), format)
		var jerr error
		for _, l := range selected {
			logf(cmd, "running lesson %s", l.Kind)
			jerr = errors.Join(jerr, enc.WriteLesson(l))
		}
		return errors.Join(jerr, enc.Flush())
	},
}

// lessonsCmd represents the lessons command
var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "list available lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := report.NewEncoder(cmd.OutOrStdout(), format)
		return errors.Join(enc.WriteKinds(lessons.All()), enc.Flush())
	},
}

var runAll bool

func init() {
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(lessonsCmd)

	lessonCmd.Flags().BoolVarP(&runAll, "all", "a", false, "run every lesson")
}
