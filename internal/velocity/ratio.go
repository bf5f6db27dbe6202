// Package velocity holds the pure calculation core: reducing historical
// sprints to per-group throughput ratios and projecting those ratios onto
// a future allocation of working days. Nothing in this package touches
// storage or I/O.
package velocity

import (
	"errors"
	"fmt"

	"github.com/mbrenner/velocity/internal/domain"
)

// ErrZeroDays marks a group recorded with zero working days. A ratio
// cannot be computed for it; the condition indicates malformed input and
// must propagate to the caller rather than be treated as zero throughput.
var ErrZeroDays = errors.New("group has zero days")

// RatioMap maps a group label to its throughput in points per day.
type RatioMap map[string]float64

// GroupRatios computes the points-per-day ratio for every group in a
// single sprint. A sprint with no groups yields an empty map.
func GroupRatios(s domain.Sprint) (RatioMap, error) {
	ratios := make(RatioMap, len(s.Groups))
	for _, g := range s.Groups {
		if g.Days == 0 {
			return nil, fmt.Errorf("group %q in sprint %s: %w",
				g.Label, s.Date.UTC().Format("2006-01-02"), ErrZeroDays)
		}
		ratios[g.Label] = float64(g.Points) / float64(g.Days)
	}
	return ratios, nil
}

// MeanRatios computes the arithmetic mean ratio per group label across
// the given sprints. A label's mean is taken over only the sprints in
// which that label appears; absence is not counted as zero. An empty
// input yields an empty map.
func MeanRatios(sprints []domain.Sprint) (RatioMap, error) {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, s := range sprints {
		ratios, err := GroupRatios(s)
		if err != nil {
			return nil, err
		}
		for label, r := range ratios {
			sums[label] += r
			counts[label]++
		}
	}

	means := make(RatioMap, len(sums))
	for label, sum := range sums {
		means[label] = sum / float64(counts[label])
	}
	return means, nil
}
