package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/model"
)

// EntryRepo provides CRUD operations for journal entries and their sport
// rows.  An entry is one athlete's record for one calendar date; its
// (sport, minutes) pairs live in the entry_sports table and are replaced
// as a full set on every save.  All timestamp fields are stored in UTC.
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo returns a new EntryRepo bound to the given database.
func NewEntryRepo(db *sql.DB) *EntryRepo { return &EntryRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *EntryRepo) DB() *sql.DB { return r.db }

// entryColumns is the scan list shared by every header query.
const entryColumns = `id, user_id, entry_date, effort, confidence, energy,
		body_feel_before, body_feel_after, win_today, lesson_today, tomorrow_focus,
		created_at, updated_at`

// Save writes an entry header and its full sport-row set as one unit of
// work.  Inside a single transaction it inserts the header when no entry
// exists for (user, date), otherwise updates the existing row scoped by
// both entry id and owner id, then deletes all existing sport rows for
// the entry and bulk-inserts the submitted set.  Either everything
// lands or nothing does.  The resolved entry ID is returned.
func (r *EntryRepo) Save(ctx context.Context, entry *model.JournalEntry, rows []model.EntrySport) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Resolve the entry for this user and date, if any.
	var entryID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM journal_entries WHERE user_id=? AND entry_date=? LIMIT 1",
		entry.UserID, entry.EntryDate).Scan(&entryID)
	switch {
	case err == sql.ErrNoRows:
		res, errIns := tx.ExecContext(ctx,
			`INSERT INTO journal_entries
			   (user_id, entry_date, effort, confidence, energy,
				body_feel_before, body_feel_after, win_today, lesson_today, tomorrow_focus)
			 VALUES (?,?,?,?,?,?,?,?,?,?)`,
			entry.UserID, entry.EntryDate, entry.Effort, entry.Confidence, entry.Energy,
			entry.BodyFeelBefore, entry.BodyFeelAfter,
			entry.WinToday, entry.LessonToday, entry.TomorrowFocus)
		if errIns != nil {
			return 0, errIns
		}
		id, errID := res.LastInsertId()
		if errID != nil {
			return 0, errID
		}
		entryID = uint64(id)
	case err != nil:
		return 0, err
	default:
		// Update in place; scoping by id AND user_id means a user can
		// never mutate another user's entry even if IDs leak.
		_, errUp := tx.ExecContext(ctx,
			`UPDATE journal_entries
			 SET effort=?, confidence=?, energy=?,
				 body_feel_before=?, body_feel_after=?,
				 win_today=?, lesson_today=?, tomorrow_focus=?, updated_at=NOW()
			 WHERE id=? AND user_id=?`,
			entry.Effort, entry.Confidence, entry.Energy,
			entry.BodyFeelBefore, entry.BodyFeelAfter,
			entry.WinToday, entry.LessonToday, entry.TomorrowFocus,
			entryID, entry.UserID)
		if errUp != nil {
			return 0, errUp
		}
	}

	// Replace the sport-row set: delete must finish before the insert
	// begins so no transient duplicates exist even inside the tx.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM entry_sports WHERE entry_id=? AND user_id=?",
		entryID, entry.UserID); err != nil {
		return 0, err
	}
	if err := insertSportRowsTx(ctx, tx, entryID, entry.UserID, rows); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return entryID, nil
}

// insertSportRowsTx bulk-inserts the sport rows for an entry in a single
// statement.  Passing an empty slice has no effect and returns nil.
func insertSportRowsTx(ctx context.Context, tx *sql.Tx, entryID, userID uint64, rows []model.EntrySport) error {
	if len(rows) == 0 {
		return nil
	}
	query := "INSERT INTO entry_sports (entry_id, user_id, sport, minutes) VALUES "
	args := make([]interface{}, 0, len(rows)*4)
	for i, row := range rows {
		if i > 0 {
			query += ","
		}
		query += "(?,?,?,?)"
		args = append(args, entryID, userID, row.Sport, row.Minutes)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// Delete removes an entry and its sport rows.  It is scoped to the
// requesting owner: deleting another user's entry reports ErrForbidden
// while a missing entry reports sql.ErrNoRows.
func (r *EntryRepo) Delete(ctx context.Context, entryID, userID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var ownerID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT user_id FROM journal_entries WHERE id=? LIMIT 1", entryID).Scan(&ownerID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrForbidden
	}
	// The FK cascades too, but deleting explicitly keeps the repo
	// correct against schemas restored without the constraint.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM entry_sports WHERE entry_id=?", entryID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM journal_entries WHERE id=? AND user_id=?", entryID, userID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByDate returns one entry with its sport rows, or sql.ErrNoRows.
func (r *EntryRepo) GetByDate(ctx context.Context, userID uint64, date string) (*model.JournalEntry, error) {
	q := "SELECT " + entryColumns + " FROM journal_entries WHERE user_id=? AND entry_date=? LIMIT 1"
	var e model.JournalEntry
	if err := scanEntry(r.db.QueryRowContext(ctx, q, userID, date), &e); err != nil {
		return nil, err
	}
	if err := r.loadSports(ctx, []*model.JournalEntry{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRange returns the user's entries with entry_date inside
// [from, to], oldest first, each populated with its sport rows.
func (r *EntryRepo) ListRange(ctx context.Context, userID uint64, from, to string) ([]model.JournalEntry, error) {
	q := "SELECT " + entryColumns + ` FROM journal_entries
		  WHERE user_id=? AND entry_date>=? AND entry_date<=?
		  ORDER BY entry_date`
	return r.list(ctx, q, userID, from, to)
}

// ListRecent returns up to limit entries, newest first, with sport rows.
func (r *EntryRepo) ListRecent(ctx context.Context, userID uint64, limit int) ([]model.JournalEntry, error) {
	q := "SELECT " + entryColumns + ` FROM journal_entries
		  WHERE user_id=? ORDER BY entry_date DESC LIMIT ?`
	return r.list(ctx, q, userID, limit)
}

// AllDates returns every entry_date the user has logged, unordered.
// The streak calculations sort for themselves.
func (r *EntryRepo) AllDates(ctx context.Context, userID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT entry_date FROM journal_entries WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		// The DSN sets parseTime=true, so DATE columns arrive as
		// time.Time; format back to YYYY-MM-DD like scanEntry does.
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d.Format(dates.Layout))
	}
	return out, rows.Err()
}

func (r *EntryRepo) list(ctx context.Context, query string, args ...interface{}) ([]model.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]model.JournalEntry, 0)
	for rows.Next() {
		var e model.JournalEntry
		if err := scanEntry(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	refs := make([]*model.JournalEntry, len(entries))
	for i := range entries {
		refs[i] = &entries[i]
	}
	if err := r.loadSports(ctx, refs); err != nil {
		return nil, err
	}
	return entries, nil
}

// loadSports populates the Sports slice for all given entries in a
// single IN query, keyed back by entry id.
func (r *EntryRepo) loadSports(ctx context.Context, entries []*model.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	index := make(map[uint64]*model.JournalEntry, len(entries))
	ids := make([]interface{}, 0, len(entries))
	placeholders := make([]string, 0, len(entries))
	for _, e := range entries {
		e.Sports = []model.EntrySport{}
		index[e.ID] = e
		ids = append(ids, e.ID)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT id, entry_id, user_id, sport, minutes FROM entry_sports
		  WHERE entry_id IN (` + strings.Join(placeholders, ",") + `)
		  ORDER BY entry_id, id`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.EntrySport
		if err := rows.Scan(&s.ID, &s.EntryID, &s.UserID, &s.Sport, &s.Minutes); err != nil {
			return err
		}
		if e, ok := index[s.EntryID]; ok {
			e.Sports = append(e.Sports, s)
		}
	}
	return rows.Err()
}

// rowScanner lets scanEntry accept both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner, e *model.JournalEntry) error {
	var entryDate time.Time
	var before, after sql.NullString
	if err := row.Scan(
		&e.ID, &e.UserID, &entryDate, &e.Effort, &e.Confidence, &e.Energy,
		&before, &after, &e.WinToday, &e.LessonToday, &e.TomorrowFocus,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return err
	}
	e.EntryDate = entryDate.Format(dates.Layout)
	if before.Valid {
		v := before.String
		e.BodyFeelBefore = &v
	}
	if after.Valid {
		v := after.String
		e.BodyFeelAfter = &v
	}
	return nil
}
