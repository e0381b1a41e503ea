package repository

import (
	"context"
	"database/sql"

	"github.com/tkarvonen/athlete-journal/internal/model"
)

// ProfileRepo persists one athlete profile per user.  The profile is
// created at sign-up and mutated by profile edits; the application
// never deletes it.
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo returns a new ProfileRepo bound to the given database.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Create inserts the sign-up profile carrying only the first name.
func (r *ProfileRepo) Create(ctx context.Context, userID uint64, firstName string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO athlete_profiles (user_id, first_name) VALUES (?,?)",
		userID, firstName)
	return err
}

// GetByUser fetches the profile for a user, or sql.ErrNoRows.
func (r *ProfileRepo) GetByUser(ctx context.Context, userID uint64) (*model.AthleteProfile, error) {
	var p model.AthleteProfile
	var birthYear sql.NullInt64
	var favorite sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, first_name, birth_year, favorite_sport, created_at, updated_at
		 FROM athlete_profiles WHERE user_id=? LIMIT 1`,
		userID).Scan(&p.ID, &p.UserID, &p.FirstName, &birthYear, &favorite, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birthYear.Valid {
		y := int(birthYear.Int64)
		p.BirthYear = &y
	}
	if favorite.Valid {
		f := favorite.String
		p.FavoriteSport = &f
	}
	return &p, nil
}

// Update overwrites the editable profile fields, scoped by owner.
func (r *ProfileRepo) Update(ctx context.Context, userID uint64, firstName string, birthYear *int, favoriteSport *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE athlete_profiles
		 SET first_name=?, birth_year=?, favorite_sport=?, updated_at=NOW()
		 WHERE user_id=?`,
		firstName, birthYear, favoriteSport, userID)
	return err
}
