package service

import (
	"context"
	"sort"
	"time"

	"github.com/mbrenner/velocity/internal/domain"
	"github.com/mbrenner/velocity/internal/repository"
	"github.com/mbrenner/velocity/internal/week"
)

type sprintService struct {
	sprints repository.SprintRepo
	now     func() time.Time
}

// NewSprintService creates a SprintService over the given repository.
// now is injectable so tests can pin the year weeks resolve against.
func NewSprintService(sprints repository.SprintRepo, now func() time.Time) SprintService {
	if now == nil {
		now = time.Now
	}
	return &sprintService{sprints: sprints, now: now}
}

func (s *sprintService) Create(ctx context.Context, weekNum int, groups []domain.Group) (time.Time, error) {
	date := week.Resolve(weekNum, s.now())
	sprint := domain.Sprint{Date: date, Groups: groups}
	if err := s.sprints.Add(ctx, sprint); err != nil {
		return date, err
	}
	return date, nil
}

func (s *sprintService) Delete(ctx context.Context, weekNum int) (time.Time, error) {
	date := week.Resolve(weekNum, s.now())
	return date, s.sprints.DeleteByDate(ctx, date)
}

func (s *sprintService) List(ctx context.Context, weekNum, weekCount int) ([]domain.Sprint, error) {
	from, to := weekRange(weekNum, weekCount, s.now())
	sprints, err := s.sprints.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sort.Slice(sprints, func(i, j int) bool {
		return sprints[i].Date.Before(sprints[j].Date)
	})
	return sprints, nil
}

// weekRange resolves [weekNum-weekCount, weekNum] to a closed date
// interval: the Monday of the earliest week through the last instant of
// the anchor week, so the anchor week's own sprint is included.
func weekRange(weekNum, weekCount int, now time.Time) (time.Time, time.Time) {
	from := week.Resolve(weekNum-weekCount, now)
	to := week.RangeEnd(week.Resolve(weekNum, now))
	return from, to
}
