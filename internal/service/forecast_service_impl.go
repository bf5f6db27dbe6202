package service

import (
	"context"
	"time"

	"github.com/mbrenner/velocity/internal/repository"
	"github.com/mbrenner/velocity/internal/velocity"
)

type forecastService struct {
	sprints repository.SprintRepo
	now     func() time.Time
}

// NewForecastService creates a ForecastService over the given repository.
func NewForecastService(sprints repository.SprintRepo, now func() time.Time) ForecastService {
	if now == nil {
		now = time.Now
	}
	return &forecastService{sprints: sprints, now: now}
}

func (s *forecastService) Forecast(ctx context.Context, weekNum, weekCount int, futureDays map[string]int) (*Forecast, error) {
	from, to := weekRange(weekNum, weekCount, s.now())

	sprints, err := s.sprints.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(sprints) == 0 {
		return nil, ErrNoSprints
	}

	ratios, err := velocity.MeanRatios(sprints)
	if err != nil {
		return nil, err
	}

	return &Forecast{
		Ratios:      ratios,
		Projection:  velocity.Project(ratios, futureDays),
		SprintCount: len(sprints),
	}, nil
}
