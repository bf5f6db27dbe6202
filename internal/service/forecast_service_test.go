package service

import (
	"context"
	"testing"
	"time"

	"github.com/mbrenner/velocity/internal/domain"
	"github.com/mbrenner/velocity/internal/repository"
	"github.com/mbrenner/velocity/internal/testutil"
	"github.com/mbrenner/velocity/internal/velocity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins week resolution to 2025, matching the testutil fixtures.
func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newServices(t *testing.T) (SprintService, ForecastService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSprintRepo(database, testutil.NewTestUoW(database))
	return NewSprintService(repo, fixedNow), NewForecastService(repo, fixedNow)
}

func groups(gs ...domain.Group) []domain.Group { return gs }

func TestForecast_AveragesAndProjects(t *testing.T) {
	sprints, forecasts := newServices(t)
	ctx := context.Background()

	_, err := sprints.Create(ctx, 19, groups(testutil.G("backend", 6, 8)))
	require.NoError(t, err)
	_, err = sprints.Create(ctx, 18, groups(testutil.G("backend", 6, 4)))
	require.NoError(t, err)

	fc, err := forecasts.Forecast(ctx, 19, 2, map[string]int{"backend": 6})
	require.NoError(t, err)

	// Ratios 8/6 and 4/6 average to 1.0; 6 future days project to 6 points.
	assert.Equal(t, 2, fc.SprintCount)
	assert.InDelta(t, 1.0, fc.Ratios["backend"], 1e-9)
	assert.Equal(t, 6, fc.Projection.Points["backend"])
	assert.Equal(t, 6, fc.Projection.Total)
}

func TestForecast_EmptyRange(t *testing.T) {
	_, forecasts := newServices(t)

	_, err := forecasts.Forecast(context.Background(), 19, 2, map[string]int{"backend": 6})
	assert.ErrorIs(t, err, ErrNoSprints)
}

func TestForecast_UnknownFutureGroupProjectsZero(t *testing.T) {
	sprints, forecasts := newServices(t)
	ctx := context.Background()

	_, err := sprints.Create(ctx, 19, groups(testutil.G("backend", 5, 10)))
	require.NoError(t, err)

	fc, err := forecasts.Forecast(ctx, 19, 1, map[string]int{"backend": 5, "design": 4})
	require.NoError(t, err)

	assert.Equal(t, 10, fc.Projection.Points["backend"])
	assert.Equal(t, 0, fc.Projection.Points["design"])
	assert.Equal(t, 10, fc.Projection.Total)
}

func TestForecast_ZeroDayGroupPropagates(t *testing.T) {
	sprints, forecasts := newServices(t)
	ctx := context.Background()

	_, err := sprints.Create(ctx, 19, groups(testutil.G("backend", 0, 8)))
	require.NoError(t, err)

	_, err = forecasts.Forecast(ctx, 19, 1, map[string]int{"backend": 6})
	assert.ErrorIs(t, err, velocity.ErrZeroDays)
}

func TestForecast_RangeExcludesOlderSprints(t *testing.T) {
	sprints, forecasts := newServices(t)
	ctx := context.Background()

	// Week 10 lies outside [17, 19]; its ratio must not enter the mean.
	_, err := sprints.Create(ctx, 10, groups(testutil.G("backend", 6, 0)))
	require.NoError(t, err)
	_, err = sprints.Create(ctx, 19, groups(testutil.G("backend", 6, 12)))
	require.NoError(t, err)

	fc, err := forecasts.Forecast(ctx, 19, 2, map[string]int{"backend": 3})
	require.NoError(t, err)

	assert.Equal(t, 1, fc.SprintCount)
	assert.InDelta(t, 2.0, fc.Ratios["backend"], 1e-9)
	assert.Equal(t, 6, fc.Projection.Total)
}
