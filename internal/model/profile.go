package model

import "time"

// AthleteProfile mirrors the `athlete_profiles` table: one row per user,
// created at sign-up and mutated by profile edits.  FavoriteSport, when
// set, pre-fills the log form's default sport.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – owning user (unique).
//  FirstName     – athlete's first name, used for greetings.
//  BirthYear     – optional birth year.
//  FavoriteSport – optional sport name from the Sports enumeration.
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
type AthleteProfile struct {
	ID            uint64    `json:"id"`             // athlete_profiles.id
	UserID        uint64    `json:"user_id"`        // athlete_profiles.user_id
	FirstName     string    `json:"first_name"`     // athlete_profiles.first_name
	BirthYear     *int      `json:"birth_year"`     // athlete_profiles.birth_year (nullable)
	FavoriteSport *string   `json:"favorite_sport"` // athlete_profiles.favorite_sport (nullable)
	CreatedAt     time.Time `json:"created_at"`     // athlete_profiles.created_at
	UpdatedAt     time.Time `json:"updated_at"`     // athlete_profiles.updated_at
}

// MonthlyReflection mirrors the `monthly_reflections` table: two free-text
// prompts answered once per (user, YYYY-MM) month and upserted on save.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – owning user.
//  Month           – calendar month as YYYY-MM, unique per user.
//  BiggestWinMonth – free text: biggest win of the month.
//  ImproveNextMonth – free text: focus for the next month.
//  CreatedAt       – timestamp of creation.
//  UpdatedAt       – timestamp of last upsert.
type MonthlyReflection struct {
	ID               uint64    `json:"id"`                 // monthly_reflections.id
	UserID           uint64    `json:"user_id"`            // monthly_reflections.user_id
	Month            string    `json:"month"`              // monthly_reflections.month
	BiggestWinMonth  string    `json:"biggest_win_month"`  // monthly_reflections.biggest_win_month
	ImproveNextMonth string    `json:"improve_next_month"` // monthly_reflections.improve_next_month
	CreatedAt        time.Time `json:"created_at"`         // monthly_reflections.created_at
	UpdatedAt        time.Time `json:"updated_at"`         // monthly_reflections.updated_at
}
