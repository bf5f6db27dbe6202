package testutil

import (
	"time"

	"github.com/mbrenner/velocity/internal/domain"
)

// Monday returns the Monday 00:00 UTC of the given ISO week in 2025.
// Week 1 of 2025 starts on 2024-12-30.
func Monday(weekNum int) time.Time {
	week1 := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	return week1.AddDate(0, 0, (weekNum-1)*7)
}

// NewTestSprint builds a sprint on the Monday of the given 2025 week.
func NewTestSprint(weekNum int, groups ...domain.Group) domain.Sprint {
	return domain.Sprint{Date: Monday(weekNum), Groups: groups}
}

// G is shorthand for a group fixture.
func G(label string, days, points int) domain.Group {
	return domain.Group{Label: label, Points: points, Days: days}
}
