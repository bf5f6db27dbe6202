package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mbrenner/velocity/internal/cli"
	"github.com/mbrenner/velocity/internal/cli/formatter"
	"github.com/mbrenner/velocity/internal/config"
	"github.com/mbrenner/velocity/internal/repository"
	"github.com/mbrenner/velocity/internal/service"
)

func main() {
	if err := run(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	formatter.SetColorEnabled(stdoutTTY && !cfg.NoColor)

	app := &cli.App{
		Config: cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	defer app.Close()

	return cli.NewRootCmd(app).Execute()
}

// printError writes the single user-facing error line. Known failure
// kinds get their plain message; anything else is reported with its
// kind so the cause is identifiable from the output alone.
func printError(err error) {
	switch {
	case errors.Is(err, repository.ErrSprintExists),
		errors.Is(err, service.ErrNoSprints):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Unexpected error (%s) %v\n", errorKind(err), err)
	}
}

// errorKind names the innermost error's type, the closest thing Go has
// to an exception class.
func errorKind(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return fmt.Sprintf("%T", err)
		}
		err = next
	}
}
