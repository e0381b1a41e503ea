// Package journal vets a submitted training-session payload before it
// touches storage.  Checks run in a fixed order and the first failure
// wins: the returned message is shown to the athlete verbatim, so no
// multi-error aggregation happens here.
package journal

import (
	"fmt"
	"strings"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/model"
)

// Limits on a single submission.
const (
	MaxSportRows = 3   // the log form caps an entry at three sports
	MaxMinutes   = 600 // minutes per sport row
	MaxTextLen   = 140 // characters per free-text field
)

// ValidationError marks a user-correctable input problem.  Handlers
// surface the message verbatim with a 400 status.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Submission is one proposed save of a day's entry: the header fields
// plus the full replacement set of sport rows.
type Submission struct {
	EntryDate      string             `json:"entry_date"`
	Sports         []model.EntrySport `json:"sports"`
	Effort         int                `json:"effort"`
	Confidence     int                `json:"confidence"`
	Energy         int                `json:"energy"`
	BodyFeelBefore *string            `json:"body_feel_before"`
	BodyFeelAfter  *string            `json:"body_feel_after"`
	WinToday       string             `json:"win_today"`
	LessonToday    string             `json:"lesson_today"`
	TomorrowFocus  string             `json:"tomorrow_focus"`
}

// Validate normalizes and checks the submission.  Sport rows with a
// blank sport or non-positive minutes are discarded first; what remains
// is the exact set persisted on success.  A nil return means the
// submission is ready to save.
func (s *Submission) Validate() error {
	if _, ok := dates.Parse(s.EntryDate); !ok {
		return invalid("Entry date must be a valid YYYY-MM-DD date")
	}

	kept := s.Sports[:0]
	for _, row := range s.Sports {
		row.Sport = strings.TrimSpace(row.Sport)
		if row.Sport == "" || row.Minutes <= 0 {
			continue
		}
		kept = append(kept, row)
	}
	s.Sports = kept

	if len(s.Sports) == 0 {
		return invalid("At least one sport with minutes is required")
	}
	if len(s.Sports) > MaxSportRows {
		return invalid("At most %d sports per entry", MaxSportRows)
	}
	for _, row := range s.Sports {
		if !model.ValidSport(row.Sport) {
			return invalid("Unknown sport %q", row.Sport)
		}
		if row.Minutes < 1 || row.Minutes > MaxMinutes {
			return invalid("Minutes must be between 1 and %d", MaxMinutes)
		}
	}

	if s.Effort < 1 || s.Effort > 5 {
		return invalid("Effort must be 1–5")
	}
	if s.Confidence < 1 || s.Confidence > 5 {
		return invalid("Confidence must be 1–5")
	}
	if s.Energy < 1 || s.Energy > 5 {
		return invalid("Energy must be 1–5")
	}

	if len([]rune(s.WinToday)) > MaxTextLen {
		return invalid("Win Today must be %d characters or less", MaxTextLen)
	}
	if len([]rune(s.LessonToday)) > MaxTextLen {
		return invalid("Lesson Today must be %d characters or less", MaxTextLen)
	}
	if len([]rune(s.TomorrowFocus)) > MaxTextLen {
		return invalid("Tomorrow Focus must be %d characters or less", MaxTextLen)
	}

	if s.BodyFeelBefore != nil && !model.ValidBodyFeel(*s.BodyFeelBefore) {
		return invalid("Body feel before must be one of Great, OK, Sore, Hurt")
	}
	if s.BodyFeelAfter != nil && !model.ValidBodyFeel(*s.BodyFeelAfter) {
		return invalid("Body feel after must be one of Great, OK, Sore, Hurt")
	}
	return nil
}
