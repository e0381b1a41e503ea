package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/insight"
	"github.com/tkarvonen/athlete-journal/internal/model"
	"github.com/tkarvonen/athlete-journal/internal/repository"
	"github.com/tkarvonen/athlete-journal/internal/stats"
)

// SummaryHandler serves the read-only screens: home, stats, monthly and
// yearly summaries.  It fetches raw rows through the repositories and
// reduces them with the stats and insight packages; nothing here writes.
type SummaryHandler struct {
	Entries     *repository.EntryRepo
	Profiles    *repository.ProfileRepo
	Reflections *repository.ReflectionRepo
}

func NewSummaryHandler(e *repository.EntryRepo, p *repository.ProfileRepo, r *repository.ReflectionRepo) *SummaryHandler {
	if e == nil || p == nil || r == nil {
		panic("nil repository passed to NewSummaryHandler")
	}
	return &SummaryHandler{Entries: e, Profiles: p, Reflections: r}
}

// Home handles GET /v1/summary/home: the greeting name, current streak,
// minutes logged this week and the last seven entries.
func (h *SummaryHandler) Home(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	firstName := ""
	if p, err := h.Profiles.GetByUser(ctx, userID); err == nil {
		firstName = p.FirstName
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	allDates, err := h.Entries.AllDates(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	weekEntries, err := h.Entries.ListRange(ctx, userID, dates.WeekMonday(), dates.WeekSunday())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	weekMinutes := 0
	for _, e := range weekEntries {
		for _, row := range e.Sports {
			weekMinutes += row.Minutes
		}
	}

	recent, err := h.Entries.ListRecent(ctx, userID, 7)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	today := dates.Today()
	hasToday := false
	for _, d := range allDates {
		if d == today {
			hasToday = true
			break
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"first_name":   firstName,
		"today":        today,
		"has_today":    hasToday,
		"streak":       dates.CalcStreak(allDates),
		"week_minutes": weekMinutes,
		"recent":       recent,
	})
}

// Monthly handles GET /v1/summary/monthly?month=YYYY-MM (default: the
// current month): window aggregates, insights and the saved reflection.
func (h *SummaryHandler) Monthly(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	month := c.QueryParam("month")
	if month == "" {
		month = dates.Today()[:7]
	}
	start, end, ok := dates.MonthBounds(month)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Entries.ListRange(ctx, userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	summary := stats.Summarize(entries, start, end)

	var reflection *model.MonthlyReflection
	if m, err := h.Reflections.GetByMonth(ctx, userID, month); err == nil {
		reflection = m
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"month":      month,
		"label":      dates.MonthLabel(month),
		"summary":    summary,
		"insights":   insight.Monthly(summary),
		"reflection": reflection,
	})
}

// Yearly handles GET /v1/summary/yearly?year=YYYY (default: the current
// year).
func (h *SummaryHandler) Yearly(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	year := c.QueryParam("year")
	if year == "" {
		year = dates.Today()[:4]
	}
	if n, err := strconv.Atoi(year); err != nil || n < 1970 || n > 9999 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	start, end := year+"-01-01", year+"-12-31"

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Entries.ListRange(ctx, userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	summary := stats.Summarize(entries, start, end)

	return c.JSON(http.StatusOK, echo.Map{
		"year":     year,
		"summary":  summary,
		"insights": insight.Yearly(summary),
	})
}

// Stats handles GET /v1/stats: the weekly minutes chart (8 most recent
// Monday-to-Sunday weeks), the 30-day per-sport breakdown and the 7-day
// effort/confidence averages.
func (h *SummaryHandler) Stats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := dates.Today()

	chartStart := dates.FormatDate(dates.MondayOf(now).AddDate(0, 0, -7*7))
	chartEntries, err := h.Entries.ListRange(ctx, userID, chartStart, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	monthStart := dates.FormatDate(now.AddDate(0, 0, -30))
	monthEntries, err := h.Entries.ListRange(ctx, userID, monthStart, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	weekStart := dates.FormatDate(now.AddDate(0, 0, -6))
	weekEntries, err := h.Entries.ListRange(ctx, userID, weekStart, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	recent := stats.Summarize(weekEntries, weekStart, today)

	return c.JSON(http.StatusOK, echo.Map{
		"weekly":          stats.WeeklyBuckets(chartEntries, now),
		"sport_breakdown": stats.SportBreakdown(monthEntries),
		"avg_effort":      recent.AvgEffort,
		"avg_confidence":  recent.AvgConfidence,
	})
}
