// Package repository persists sprints and their groups in SQLite.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mbrenner/velocity/internal/domain"
)

// ErrNotFound marks a lookup for a sprint date with no recorded sprint.
var ErrNotFound = errors.New("not found")

// ErrSprintExists marks an attempt to record a second sprint on a date
// that already has one.
var ErrSprintExists = errors.New("sprint already exists")

// SprintRepo is the storage collaborator the calculation core is fed
// from. Range results carry fully populated groups and come back in
// unspecified order; callers must not depend on ordering.
type SprintRepo interface {
	// Add persists the sprint and all its groups as one transaction.
	// A sprint on the same date fails with ErrSprintExists and leaves
	// the existing sprint untouched.
	Add(ctx context.Context, s domain.Sprint) error

	// GetByDate returns the sprint recorded on the given date, or an
	// error wrapping ErrNotFound.
	GetByDate(ctx context.Context, date time.Time) (domain.Sprint, error)

	// ListRange returns every sprint whose date lies in [from, to].
	ListRange(ctx context.Context, from, to time.Time) ([]domain.Sprint, error)

	// DeleteByDate removes the sprint on the given date and, by
	// cascade, its groups. Deleting an absent date is a no-op.
	DeleteByDate(ctx context.Context, date time.Time) error
}
