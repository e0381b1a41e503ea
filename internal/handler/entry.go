package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/journal"
	"github.com/tkarvonen/athlete-journal/internal/model"
	"github.com/tkarvonen/athlete-journal/internal/queue"
	"github.com/tkarvonen/athlete-journal/internal/repository"
	publisher "github.com/tkarvonen/athlete-journal/internal/service"
)

// EntryHandler serves the journal entry endpoints.  Validation happens
// before any storage call; the repository performs the header upsert and
// sport-row replacement as one transaction, so a failed save never
// leaves a half-written entry behind.
type EntryHandler struct {
	Entries *repository.EntryRepo
}

// NewEntryHandler constructs an EntryHandler.  The repository must be non-nil.
func NewEntryHandler(entries *repository.EntryRepo) *EntryHandler {
	if entries == nil {
		panic("nil repository passed to NewEntryHandler")
	}
	return &EntryHandler{Entries: entries}
}

// Submit handles PUT /v1/entries: create-or-replace the caller's entry
// for the submitted date.  Saving the same payload twice is idempotent;
// the entry row is reused and the sport rows always equal the submitted
// set.
func (h *EntryHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var sub journal.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := sub.Validate(); err != nil {
		// Validation messages are written for the athlete; surface verbatim.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	entry := model.JournalEntry{
		UserID:         userID,
		EntryDate:      sub.EntryDate,
		Effort:         sub.Effort,
		Confidence:     sub.Confidence,
		Energy:         sub.Energy,
		BodyFeelBefore: sub.BodyFeelBefore,
		BodyFeelAfter:  sub.BodyFeelAfter,
		WinToday:       sub.WinToday,
		LessonToday:    sub.LessonToday,
		TomorrowFocus:  sub.TomorrowFocus,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entryID, err := h.Entries.Save(ctx, &entry, sub.Sports)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save entry failed"})
	}

	total := 0
	sportNames := make([]string, 0, len(sub.Sports))
	for _, row := range sub.Sports {
		total += row.Minutes
		sportNames = append(sportNames, row.Sport)
	}
	// Best effort: a broker outage must not fail the save.
	_ = publisher.PublishJournalActivity(ctx, queue.JournalActivityEvent{
		Action:       queue.ActionEntryLogged,
		UserID:       userID,
		EntryID:      entryID,
		EntryDate:    sub.EntryDate,
		TotalMinutes: total,
		Sports:       sportNames,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"id": entryID, "entry_date": sub.EntryDate})
}

// List handles GET /v1/entries?from=&to=: the caller's entries inside
// the window, oldest first, with joined sport rows.  The window defaults
// to the last 30 days.
func (h *EntryHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	to := c.QueryParam("to")
	if to == "" {
		to = dates.Today()
	}
	// Validate to before deriving from, so a bad to parameter is
	// reported as its own error instead of a derivation failure.
	toDay, ok := dates.Parse(to)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
	}
	from := c.QueryParam("from")
	if from == "" {
		from = dates.FormatDate(toDay.AddDate(0, 0, -30))
	}
	if _, ok := dates.Parse(from); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries, "from": from, "to": to})
}

// GetByDate handles GET /v1/entries/:date.
func (h *EntryHandler) GetByDate(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	date := c.Param("date")
	if _, ok := dates.Parse(date); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entry, err := h.Entries.GetByDate(ctx, userID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no entry for this date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/entries/:id.  The delete cascades to the
// entry's sport rows and is irreversible.
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || entryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid entry id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Entries.Delete(ctx, entryID, userID); err != nil {
		switch {
		case err == sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "entry not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}

	_ = publisher.PublishJournalActivity(ctx, queue.JournalActivityEvent{
		Action:     queue.ActionEntryDeleted,
		UserID:     userID,
		EntryID:    entryID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusNoContent)
}
