package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbrenner/velocity/internal/domain"
)

// parseGroupSpec parses one -g value of the form "label days points...".
// Fields are whitespace-separated inside a single quoted argument, e.g.
// -g "backend 6 8 5". Point values are summed; minPoints lets the get
// command require a bare "label days" form (zero point values).
func parseGroupSpec(spec string, minPoints int) (domain.Group, error) {
	fields := strings.Fields(spec)
	if len(fields) < 2+minPoints {
		return domain.Group{}, fmt.Errorf("group spec %q: want \"label days points...\"", spec)
	}

	days, err := strconv.Atoi(fields[1])
	if err != nil || days < 0 {
		return domain.Group{}, fmt.Errorf("group spec %q: invalid days %q", spec, fields[1])
	}

	points := 0
	for _, f := range fields[2:] {
		p, err := strconv.Atoi(f)
		if err != nil {
			return domain.Group{}, fmt.Errorf("group spec %q: invalid points %q", spec, f)
		}
		points += p
	}

	return domain.Group{
		Label:  domain.NormalizeLabel(fields[0]),
		Points: points,
		Days:   days,
	}, nil
}

// parseCreateGroups parses the -g values for create: each needs at
// least one point value.
func parseCreateGroups(specs []string) ([]domain.Group, error) {
	groups := make([]domain.Group, 0, len(specs))
	for _, spec := range specs {
		g, err := parseGroupSpec(spec, 1)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// parseFutureDays parses the -g values for get: "label days" pairs
// forming the future day allocation.
func parseFutureDays(specs []string) (map[string]int, error) {
	future := make(map[string]int, len(specs))
	for _, spec := range specs {
		fields := strings.Fields(spec)
		if len(fields) != 2 {
			return nil, fmt.Errorf("group spec %q: want \"label days\"", spec)
		}
		days, err := strconv.Atoi(fields[1])
		if err != nil || days < 0 {
			return nil, fmt.Errorf("group spec %q: invalid days %q", spec, fields[1])
		}
		future[domain.NormalizeLabel(fields[0])] = days
	}
	return future, nil
}
