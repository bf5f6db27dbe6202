package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <weeknum>",
		Short: "Delete the sprint recorded for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekNum, err := parseWeekArg(args[0])
			if err != nil {
				return err
			}

			// Deleting a week with no sprint is a no-op, not an error.
			date, err := app.Sprints.Delete(cmd.Context(), weekNum)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sprint for week %d (%s)\n",
				weekNum, date.Format("2006-01-02"))
			return nil
		},
	}
}
