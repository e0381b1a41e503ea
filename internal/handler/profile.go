package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/model"
	"github.com/tkarvonen/athlete-journal/internal/repository"
)

// ProfileHandler serves the athlete profile endpoints.
type ProfileHandler struct {
	Profiles *repository.ProfileRepo
}

func NewProfileHandler(p *repository.ProfileRepo) *ProfileHandler {
	if p == nil {
		panic("nil repository passed to NewProfileHandler")
	}
	return &ProfileHandler{Profiles: p}
}

type profileUpdateReq struct {
	FirstName     string  `json:"first_name"`
	BirthYear     *int    `json:"birth_year"`
	FavoriteSport *string `json:"favorite_sport"`
}

// Get handles GET /v1/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.GetByUser(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /v1/profile.  A blank favorite sport clears the
// log form default; a set one must be a known sport.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	if req.FirstName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name required"})
	}
	if req.BirthYear != nil {
		y := *req.BirthYear
		if y < 1900 || y > time.Now().Year() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid birth_year"})
		}
	}
	if req.FavoriteSport != nil {
		fav := strings.TrimSpace(*req.FavoriteSport)
		if fav == "" {
			req.FavoriteSport = nil
		} else if !model.ValidSport(fav) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown favorite_sport"})
		} else {
			req.FavoriteSport = &fav
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.Update(ctx, userID, req.FirstName, req.BirthYear, req.FavoriteSport); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
