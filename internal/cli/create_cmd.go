package cli

import (
	"errors"
	"fmt"

	"github.com/mbrenner/velocity/internal/repository"
	"github.com/spf13/cobra"
)

func newCreateCmd(app *App) *cobra.Command {
	var groupSpecs []string

	cmd := &cobra.Command{
		Use:   `create <weeknum> [-g "label days points..."]...`,
		Short: "Record a sprint for a week of the current year",
		Long: `Record a sprint for the given week number of the current year.

Each -g flag adds one group as a quoted spec: the group label, the days
worked, then one or more completed point values (summed). For example:

  velocity create 19 -g "backend 6 8" -g "frontend 5 3 2 5"

With no -g flags on a terminal, groups are collected interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekNum, err := parseWeekArg(args[0])
			if err != nil {
				return err
			}

			groups, err := parseCreateGroups(groupSpecs)
			if err != nil {
				return err
			}
			if len(groups) == 0 && app.IsInteractive != nil && app.IsInteractive() {
				groups, err = runGroupWizard()
				if err != nil {
					return err
				}
			}

			date, err := app.Sprints.Create(cmd.Context(), weekNum, groups)
			if err != nil {
				if errors.Is(err, repository.ErrSprintExists) {
					return fmt.Errorf("a sprint is already recorded for week %d (%s)",
						weekNum, date.Format("2006-01-02"))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded sprint for week %d (%s) with %d group(s)\n",
				weekNum, date.Format("2006-01-02"), len(groups))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&groupSpecs, "group", "g", nil,
		`group spec "label days points..." (repeatable)`)

	return cmd
}
