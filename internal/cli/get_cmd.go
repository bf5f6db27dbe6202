package cli

import (
	"errors"
	"fmt"

	"github.com/mbrenner/velocity/internal/cli/formatter"
	"github.com/mbrenner/velocity/internal/service"
	"github.com/spf13/cobra"
)

func newGetCmd(app *App) *cobra.Command {
	var weekCount int
	var groupSpecs []string

	cmd := &cobra.Command{
		Use:   `get <weeknum> -w <weekcount> [-g "label days"]...`,
		Short: "Forecast points from historical throughput",
		Long: `Average each group's points-per-day ratio over the sprints recorded in
the weekcount weeks up to and including weeknum, then project the means
onto the future day allocation given by the -g flags:

  velocity get 19 -w 2 -g "backend 6" -g "frontend 5"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekNum, err := parseWeekArg(args[0])
			if err != nil {
				return err
			}
			if weekCount <= 0 {
				weekCount = app.Config.WeekCount
			}

			futureDays, err := parseFutureDays(groupSpecs)
			if err != nil {
				return err
			}

			fc, err := app.Forecasts.Forecast(cmd.Context(), weekNum, weekCount, futureDays)
			if err != nil {
				if errors.Is(err, service.ErrNoSprints) {
					return fmt.Errorf("no sprints recorded in weeks %d-%d",
						weekNum-weekCount, weekNum)
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForecast(fc, futureDays))
			return nil
		},
	}

	addWeeksFlag(cmd.Flags(), &weekCount)
	cmd.Flags().StringArrayVarP(&groupSpecs, "group", "g", nil,
		`future allocation "label days" (repeatable)`)

	return cmd
}
