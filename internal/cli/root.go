// Package cli defines the velocity command tree.
package cli

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/mbrenner/velocity/internal/config"
	"github.com/mbrenner/velocity/internal/db"
	"github.com/mbrenner/velocity/internal/repository"
	"github.com/mbrenner/velocity/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds configuration and the service handles CLI commands run
// against. Services are wired lazily, after flag parsing, because the
// -d flag decides which database to open.
type App struct {
	Config config.Config

	// IsInteractive reports whether stdin is a terminal; the create
	// command only offers the interactive form when it is.
	IsInteractive func() bool

	dbPath    string
	database  *sql.DB
	Sprints   service.SprintService
	Forecasts service.ForecastService
}

// init opens the database and wires repositories and services. Called
// from the root command's PersistentPreRunE once flags are bound.
func (a *App) init() error {
	if a.database != nil {
		return nil
	}

	path := a.dbPath
	if path == "" {
		path = a.Config.DBPath
	}

	database, err := db.OpenDB(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.database = database

	uow := db.NewSQLiteUnitOfWork(database)
	sprintRepo := repository.NewSQLiteSprintRepo(database, uow)

	a.Sprints = service.NewSprintService(sprintRepo, time.Now)
	a.Forecasts = service.NewForecastService(sprintRepo, time.Now)
	return nil
}

// Close releases the database connection if one was opened.
func (a *App) Close() error {
	if a.database == nil {
		return nil
	}
	return a.database.Close()
}

// NewRootCmd creates the top-level "velocity" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "velocity",
		Short:         "Record sprint throughput and forecast future points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	root.PersistentFlags().StringVarP(&app.dbPath, "db", "d", "",
		"path to the sqlite database (default from config)")

	root.AddCommand(
		newCreateCmd(app),
		newGetCmd(app),
		newDeleteCmd(app),
		newListCmd(app),
	)

	return root
}

// addWeeksFlag registers the shared -w lookback flag. Zero means "use
// the configured default".
func addWeeksFlag(fs *pflag.FlagSet, weekCount *int) {
	fs.IntVarP(weekCount, "weeks", "w", 0,
		"number of prior weeks of history (default from config)")
}

// parseWeekArg parses the positional week number argument.
func parseWeekArg(arg string) (int, error) {
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid week number %q", arg)
	}
	if num < 1 || num > 53 {
		return 0, fmt.Errorf("week number %d out of range [1, 53]", num)
	}
	return num, nil
}
