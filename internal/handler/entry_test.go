package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/repository"
)

// listContext builds an authenticated echo context for GET /v1/entries
// with the given query string.  The handler under test never reaches
// storage on the paths exercised here.
func listContext(t *testing.T, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/entries"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(1))
	return c, rec
}

func TestListRejectsMalformedWindow(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{
			name:    "bad to is reported as the to error",
			query:   "?to=junk",
			wantMsg: "invalid to date",
		},
		{
			name:    "bad to with explicit from still blames to",
			query:   "?from=2024-06-01&to=06/05/2024",
			wantMsg: "invalid to date",
		},
		{
			name:    "bad from with valid to",
			query:   "?from=nope&to=2024-06-05",
			wantMsg: "invalid from date",
		},
	}
	h := NewEntryHandler(repository.NewEntryRepo(new(sql.DB)))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := listContext(t, tc.query)
			if err := h.List(c); err != nil {
				t.Fatalf("List returned %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Errorf("body = %s, want it to contain %q", rec.Body.String(), tc.wantMsg)
			}
		})
	}
}
