package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/repository"
)

// ReflectionHandler serves the monthly reflection endpoints.  A
// reflection is upserted: saving again for the same month overwrites
// the previous answers.
type ReflectionHandler struct {
	Reflections *repository.ReflectionRepo
}

func NewReflectionHandler(r *repository.ReflectionRepo) *ReflectionHandler {
	if r == nil {
		panic("nil repository passed to NewReflectionHandler")
	}
	return &ReflectionHandler{Reflections: r}
}

type reflectionReq struct {
	BiggestWinMonth  string `json:"biggest_win_month"`
	ImproveNextMonth string `json:"improve_next_month"`
}

// Get handles GET /v1/reflections/:month.
func (h *ReflectionHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	month := c.Param("month")
	if _, _, ok := dates.MonthBounds(month); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Reflections.GetByMonth(ctx, userID, month)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no reflection for this month"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// Upsert handles PUT /v1/reflections/:month.
func (h *ReflectionHandler) Upsert(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	month := c.Param("month")
	if _, _, ok := dates.MonthBounds(month); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}

	var req reflectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reflections.Upsert(ctx, userID, month, req.BiggestWinMonth, req.ImproveNextMonth); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save reflection failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
