package model

import "time"

// BodyFeel enumerates the subjective wellness ratings an athlete can
// attach to an entry.  The values are stored as-is in the database.
const (
	BodyFeelGreat = "Great"
	BodyFeelOK    = "OK"
	BodyFeelSore  = "Sore"
	BodyFeelHurt  = "Hurt"
)

// BodyFeels lists every valid body-feel value in display order.
var BodyFeels = []string{BodyFeelGreat, BodyFeelOK, BodyFeelSore, BodyFeelHurt}

// Sports lists every sport an entry row may reference, "Other" last.
var Sports = []string{
	"Basketball", "Football", "Baseball", "Soccer", "Hockey", "Lacrosse",
	"Softball", "Volleyball", "Tennis", "Golf", "Track & Field", "Swimming",
	"Wrestling", "Gymnastics", "Ski/Snowboard", "Other",
}

// ValidSport reports whether name is one of the fixed sport values.
func ValidSport(name string) bool {
	for _, s := range Sports {
		if s == name {
			return true
		}
	}
	return false
}

// ValidBodyFeel reports whether v is one of the fixed body-feel values.
func ValidBodyFeel(v string) bool {
	for _, b := range BodyFeels {
		if b == v {
			return true
		}
	}
	return false
}

// JournalEntry mirrors the `journal_entries` table: one athlete's record
// for one calendar date.  (user_id, entry_date) is unique, so a date is
// logged at most once per athlete and subsequent saves mutate in place.
//
// Fields:
//  ID             – primary key identifier.
//  UserID         – owning athlete.
//  EntryDate      – calendar date as YYYY-MM-DD.
//  Effort         – subjective effort rating, 1–5.
//  Confidence     – subjective confidence rating, 1–5.
//  Energy         – subjective energy rating, 1–5.
//  BodyFeelBefore – body feel before the session (nullable).
//  BodyFeelAfter  – body feel after the session (nullable).
//  WinToday       – free text, at most 140 characters.
//  LessonToday    – free text, at most 140 characters.
//  TomorrowFocus  – free text, at most 140 characters.
//  CreatedAt      – timestamp of creation.
//  UpdatedAt      – timestamp of last mutation.
type JournalEntry struct {
	ID             uint64    `json:"id"`              // journal_entries.id
	UserID         uint64    `json:"user_id"`         // journal_entries.user_id
	EntryDate      string    `json:"entry_date"`      // journal_entries.entry_date
	Effort         int       `json:"effort"`          // journal_entries.effort
	Confidence     int       `json:"confidence"`      // journal_entries.confidence
	Energy         int       `json:"energy"`          // journal_entries.energy
	BodyFeelBefore *string   `json:"body_feel_before"` // journal_entries.body_feel_before (nullable)
	BodyFeelAfter  *string   `json:"body_feel_after"`  // journal_entries.body_feel_after (nullable)
	WinToday       string    `json:"win_today"`       // journal_entries.win_today
	LessonToday    string    `json:"lesson_today"`    // journal_entries.lesson_today
	TomorrowFocus  string    `json:"tomorrow_focus"`  // journal_entries.tomorrow_focus
	CreatedAt      time.Time `json:"created_at"`      // journal_entries.created_at
	UpdatedAt      time.Time `json:"updated_at"`      // journal_entries.updated_at

	Sports []EntrySport `json:"sports"` // populated from entry_sports when joined
}

// EntrySport mirrors the `entry_sports` table: one (sport, minutes) pair
// belonging to an entry.  Rows are exclusively owned by their entry; the
// foreign key cascades on delete and every save replaces the full set.
//
// Fields:
//  ID      – primary key identifier.
//  EntryID – owning journal entry.
//  UserID  – owning athlete, duplicated for owner-scoped queries.
//  Sport   – one of the Sports enumeration values.
//  Minutes – training minutes, 1–600.
type EntrySport struct {
	ID      uint64 `json:"id,omitempty"`       // entry_sports.id
	EntryID uint64 `json:"entry_id,omitempty"` // entry_sports.entry_id
	UserID  uint64 `json:"-"`                  // entry_sports.user_id
	Sport   string `json:"sport"`              // entry_sports.sport
	Minutes int    `json:"minutes"`            // entry_sports.minutes
}
