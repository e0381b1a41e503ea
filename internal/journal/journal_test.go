package journal

import (
	"errors"
	"strings"
	"testing"

	"github.com/tkarvonen/athlete-journal/internal/model"
)

func strptr(s string) *string { return &s }

func validSubmission() Submission {
	return Submission{
		EntryDate: "2024-06-05",
		Sports: []model.EntrySport{
			{Sport: "Soccer", Minutes: 60},
		},
		Effort:     4,
		Confidence: 3,
		Energy:     5,
	}
}

func TestValidateAccepts(t *testing.T) {
	sub := validSubmission()
	sub.BodyFeelBefore = strptr(model.BodyFeelSore)
	sub.BodyFeelAfter = strptr(model.BodyFeelGreat)
	sub.WinToday = "Scored twice in scrimmage"
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate returned %v, want nil", err)
	}
}

func TestValidateBoundaryRatings(t *testing.T) {
	sub := validSubmission()
	sub.Effort, sub.Confidence, sub.Energy = 5, 1, 5
	if err := sub.Validate(); err != nil {
		t.Fatalf("ratings at the boundaries rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Submission)
		wantMsg string
	}{
		{
			name:    "malformed date",
			mutate:  func(s *Submission) { s.EntryDate = "06/05/2024" },
			wantMsg: "Entry date must be a valid YYYY-MM-DD date",
		},
		{
			name:    "no sports",
			mutate:  func(s *Submission) { s.Sports = nil },
			wantMsg: "At least one sport with minutes is required",
		},
		{
			name: "only discarded rows",
			mutate: func(s *Submission) {
				s.Sports = []model.EntrySport{
					{Sport: "Soccer", Minutes: 0},
					{Sport: "   ", Minutes: 30},
				}
			},
			wantMsg: "At least one sport with minutes is required",
		},
		{
			name: "too many sports",
			mutate: func(s *Submission) {
				s.Sports = []model.EntrySport{
					{Sport: "Soccer", Minutes: 10},
					{Sport: "Tennis", Minutes: 10},
					{Sport: "Golf", Minutes: 10},
					{Sport: "Hockey", Minutes: 10},
				}
			},
			wantMsg: "At most 3 sports per entry",
		},
		{
			name: "unknown sport",
			mutate: func(s *Submission) {
				s.Sports = []model.EntrySport{{Sport: "Quidditch", Minutes: 30}}
			},
			wantMsg: `Unknown sport "Quidditch"`,
		},
		{
			name: "minutes over the cap",
			mutate: func(s *Submission) {
				s.Sports = []model.EntrySport{{Sport: "Soccer", Minutes: 601}}
			},
			wantMsg: "Minutes must be between 1 and 600",
		},
		{
			name:    "effort too high",
			mutate:  func(s *Submission) { s.Effort = 6 },
			wantMsg: "Effort must be 1–5",
		},
		{
			name:    "effort missing",
			mutate:  func(s *Submission) { s.Effort = 0 },
			wantMsg: "Effort must be 1–5",
		},
		{
			name:    "confidence too low",
			mutate:  func(s *Submission) { s.Confidence = 0 },
			wantMsg: "Confidence must be 1–5",
		},
		{
			name:    "energy too high",
			mutate:  func(s *Submission) { s.Energy = 9 },
			wantMsg: "Energy must be 1–5",
		},
		{
			name:    "win today too long",
			mutate:  func(s *Submission) { s.WinToday = strings.Repeat("a", 141) },
			wantMsg: "Win Today must be 140 characters or less",
		},
		{
			name:    "lesson today too long",
			mutate:  func(s *Submission) { s.LessonToday = strings.Repeat("b", 141) },
			wantMsg: "Lesson Today must be 140 characters or less",
		},
		{
			name:    "tomorrow focus too long",
			mutate:  func(s *Submission) { s.TomorrowFocus = strings.Repeat("c", 141) },
			wantMsg: "Tomorrow Focus must be 140 characters or less",
		},
		{
			name:    "invalid body feel before",
			mutate:  func(s *Submission) { s.BodyFeelBefore = strptr("Amazing") },
			wantMsg: "Body feel before must be one of Great, OK, Sore, Hurt",
		},
		{
			name:    "invalid body feel after",
			mutate:  func(s *Submission) { s.BodyFeelAfter = strptr("meh") },
			wantMsg: "Body feel after must be one of Great, OK, Sore, Hurt",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)
			err := sub.Validate()
			if err == nil {
				t.Fatal("Validate returned nil, want error")
			}
			if !IsValidationError(err) {
				t.Errorf("error is not a ValidationError: %T", err)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestValidateDiscardsEmptyRows(t *testing.T) {
	sub := validSubmission()
	sub.Sports = []model.EntrySport{
		{Sport: "Soccer", Minutes: 60},
		{Sport: "", Minutes: 30},
		{Sport: "Tennis", Minutes: 0},
		{Sport: "Tennis", Minutes: -5},
	}
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate returned %v, want nil", err)
	}
	if len(sub.Sports) != 1 || sub.Sports[0].Sport != "Soccer" {
		t.Errorf("kept rows = %v, want only Soccer", sub.Sports)
	}
}

func TestValidateTrimsSportNames(t *testing.T) {
	sub := validSubmission()
	sub.Sports = []model.EntrySport{{Sport: "  Soccer  ", Minutes: 45}}
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate returned %v, want nil", err)
	}
	if sub.Sports[0].Sport != "Soccer" {
		t.Errorf("sport = %q, want trimmed %q", sub.Sports[0].Sport, "Soccer")
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	sub := validSubmission()
	sub.WinToday = strings.Repeat("ä", 140) // 140 runes, 280 bytes
	if err := sub.Validate(); err != nil {
		t.Fatalf("140 multi-byte runes rejected: %v", err)
	}
	sub.WinToday = strings.Repeat("ä", 141)
	if err := sub.Validate(); err == nil {
		t.Fatal("141 runes accepted, want error")
	}
}

func TestIsValidationError(t *testing.T) {
	if IsValidationError(errors.New("boom")) {
		t.Error("plain error reported as a ValidationError")
	}
	sub := validSubmission()
	sub.Effort = 0
	if err := sub.Validate(); !IsValidationError(err) {
		t.Error("Validate error not recognized")
	}
}
