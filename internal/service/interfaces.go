// Package service wires week resolution, the sprint repository, and the
// calculation core into the operations the CLI invokes.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/mbrenner/velocity/internal/domain"
	"github.com/mbrenner/velocity/internal/velocity"
)

// ErrNoSprints marks a forecast request over a range with no recorded
// sprints. There is no history to average, so there is nothing to
// project from.
var ErrNoSprints = errors.New("no sprints found in range")

// SprintService records and removes sprints by week number.
type SprintService interface {
	// Create records a sprint for the given week of the current year.
	Create(ctx context.Context, weekNum int, groups []domain.Group) (time.Time, error)

	// Delete removes the sprint for the given week if one exists.
	Delete(ctx context.Context, weekNum int) (time.Time, error)

	// List returns the sprints recorded over the weekCount weeks up to
	// and including weekNum, sorted by date for display.
	List(ctx context.Context, weekNum, weekCount int) ([]domain.Sprint, error)
}

// Forecast is the outcome of projecting historical ratios onto a
// future day allocation.
type Forecast struct {
	Ratios      velocity.RatioMap
	Projection  velocity.Projection
	SprintCount int
}

// ForecastService reduces a window of history to mean ratios and
// projects them onto the requested future days per group.
type ForecastService interface {
	Forecast(ctx context.Context, weekNum, weekCount int, futureDays map[string]int) (*Forecast, error)
}
