package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbrenner/velocity/internal/db"
	"github.com/mbrenner/velocity/internal/domain"
)

// SQLiteSprintRepo implements SprintRepo using a SQLite database.
// Writes go through the unit of work so a sprint row and its group rows
// land (or fail) together.
type SQLiteSprintRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo.
func NewSQLiteSprintRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: database, uow: uow}
}

func (r *SQLiteSprintRepo) Add(ctx context.Context, s domain.Sprint) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sprintID := uuid.New().String()

		_, err := tx.ExecContext(ctx,
			`INSERT INTO sprints (id, date, created_at) VALUES (?, ?, ?)`,
			sprintID,
			s.Date.UTC().Unix(),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("sprint on %s: %w",
					s.Date.UTC().Format("2006-01-02"), ErrSprintExists)
			}
			return fmt.Errorf("inserting sprint: %w", err)
		}

		for _, g := range s.Groups {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO sprint_groups (id, sprint_id, label, points, days) VALUES (?, ?, ?, ?, ?)`,
				uuid.New().String(), sprintID, g.Label, g.Points, g.Days,
			)
			if err != nil {
				return fmt.Errorf("inserting group %q: %w", g.Label, err)
			}
		}
		return nil
	})
}

func (r *SQLiteSprintRepo) GetByDate(ctx context.Context, date time.Time) (domain.Sprint, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM sprints WHERE date = ?`, date.UTC().Unix(),
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Sprint{}, fmt.Errorf("sprint on %s: %w",
				date.UTC().Format("2006-01-02"), ErrNotFound)
		}
		return domain.Sprint{}, fmt.Errorf("looking up sprint: %w", err)
	}

	groups, err := r.loadGroups(ctx, id)
	if err != nil {
		return domain.Sprint{}, err
	}
	return domain.Sprint{Date: date.UTC(), Groups: groups}, nil
}

func (r *SQLiteSprintRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.Sprint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date FROM sprints WHERE date >= ? AND date <= ?`,
		from.UTC().Unix(), to.UTC().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	type sprintRow struct {
		id   string
		date int64
	}
	var heads []sprintRow
	for rows.Next() {
		var h sprintRow
		if err := rows.Scan(&h.id, &h.date); err != nil {
			return nil, fmt.Errorf("scanning sprint: %w", err)
		}
		heads = append(heads, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}

	sprints := make([]domain.Sprint, 0, len(heads))
	for _, h := range heads {
		groups, err := r.loadGroups(ctx, h.id)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, domain.Sprint{
			Date:   time.Unix(h.date, 0).UTC(),
			Groups: groups,
		})
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	// Cascade removes the group rows; a missing date is a no-op.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sprints WHERE date = ?`, date.UTC().Unix())
	if err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) loadGroups(ctx context.Context, sprintID string) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label, points, days FROM sprint_groups WHERE sprint_id = ? ORDER BY label`,
		sprintID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.Label, &g.Points, &g.Days); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}
	return groups, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The modernc driver exposes no typed error for this, so match
// on the message like the migration layer does for schema errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
