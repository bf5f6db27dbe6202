package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mbrenner/velocity/internal/domain"
)

func validateLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("label must not be empty")
	}
	return nil
}

func validateDays(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a positive number of days")
	}
	return nil
}

func validatePointList(s string) error {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return errors.New("enter at least one point value")
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return errors.New("point values must be whole numbers")
		}
	}
	return nil
}

// runGroupWizard collects groups interactively when create is invoked
// without -g flags on a terminal.
func runGroupWizard() ([]domain.Group, error) {
	var groups []domain.Group

	for {
		var label, days, points string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Group label").
					Placeholder("backend").
					Value(&label).
					Validate(validateLabel),
				huh.NewInput().
					Title("Days worked").
					Placeholder("6").
					Value(&days).
					Validate(validateDays),
				huh.NewInput().
					Title("Points completed (space-separated)").
					Placeholder("8 3 5").
					Value(&points).
					Validate(validatePointList),
			),
		).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return nil, err
		}

		// Validators already vetted every field.
		d, _ := strconv.Atoi(strings.TrimSpace(days))
		total := 0
		for _, f := range strings.Fields(points) {
			p, _ := strconv.Atoi(f)
			total += p
		}
		groups = append(groups, domain.Group{
			Label:  domain.NormalizeLabel(label),
			Points: total,
			Days:   d,
		})

		more := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().Title("Add another group?").Value(&more),
			),
		).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !more {
			return groups, nil
		}
	}
}
