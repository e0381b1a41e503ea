package repository

import (
	"context"
	"database/sql"

	"github.com/tkarvonen/athlete-journal/internal/model"
)

// ReflectionRepo persists monthly reflections: two free-text prompts
// keyed by (user, YYYY-MM) with a unique constraint on the pair.
type ReflectionRepo struct {
	db *sql.DB
}

// NewReflectionRepo returns a new ReflectionRepo bound to the given database.
func NewReflectionRepo(db *sql.DB) *ReflectionRepo { return &ReflectionRepo{db: db} }

// Upsert creates the reflection for (user, month) or overwrites it when
// one already exists.  The unique key makes this a single statement, so
// no read-modify-write race exists.
func (r *ReflectionRepo) Upsert(ctx context.Context, userID uint64, month, biggestWin, improveNext string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO monthly_reflections (user_id, month, biggest_win_month, improve_next_month)
		 VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   biggest_win_month=VALUES(biggest_win_month),
		   improve_next_month=VALUES(improve_next_month),
		   updated_at=NOW()`,
		userID, month, biggestWin, improveNext)
	return err
}

// GetByMonth fetches the reflection for (user, month), or sql.ErrNoRows.
func (r *ReflectionRepo) GetByMonth(ctx context.Context, userID uint64, month string) (*model.MonthlyReflection, error) {
	var m model.MonthlyReflection
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, month, biggest_win_month, improve_next_month, created_at, updated_at
		 FROM monthly_reflections WHERE user_id=? AND month=? LIMIT 1`,
		userID, month).Scan(&m.ID, &m.UserID, &m.Month, &m.BiggestWinMonth, &m.ImproveNextMonth, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
