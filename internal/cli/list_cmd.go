package cli

import (
	"fmt"
	"time"

	"github.com/mbrenner/velocity/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var weekCount int

	cmd := &cobra.Command{
		Use:   "list [<weeknum>]",
		Short: "List recorded sprints",
		Long: `List the sprints recorded over the weekcount weeks up to and including
weeknum. weeknum defaults to the current week.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekNum := 0
			if len(args) == 1 {
				num, err := parseWeekArg(args[0])
				if err != nil {
					return err
				}
				weekNum = num
			} else {
				_, weekNum = time.Now().UTC().ISOWeek()
			}
			if weekCount <= 0 {
				weekCount = app.Config.WeekCount
			}

			sprints, err := app.Sprints.List(cmd.Context(), weekNum, weekCount)
			if err != nil {
				return err
			}
			if len(sprints) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sprints recorded in weeks %d-%d\n",
					weekNum-weekCount, weekNum)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSprintList(sprints))
			return nil
		},
	}

	addWeeksFlag(cmd.Flags(), &weekCount)

	return cmd
}
