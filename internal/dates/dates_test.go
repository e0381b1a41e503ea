package dates

import (
	"testing"
	"time"
)

func TestStreakEndingAt(t *testing.T) {
	cases := []struct {
		name  string
		today string
		dates []string
		want  int
	}{
		{
			name:  "three consecutive days ending today",
			today: "2024-06-05",
			dates: []string{"2024-06-03", "2024-06-04", "2024-06-05"},
			want:  3,
		},
		{
			name:  "streak broken when today is missing",
			today: "2024-06-06",
			dates: []string{"2024-06-03", "2024-06-04", "2024-06-05"},
			want:  0,
		},
		{
			name:  "gap ends the run",
			today: "2024-06-05",
			dates: []string{"2024-06-01", "2024-06-02", "2024-06-04", "2024-06-05"},
			want:  2,
		},
		{
			name:  "unordered input with duplicates",
			today: "2024-06-05",
			dates: []string{"2024-06-05", "2024-06-03", "2024-06-04", "2024-06-04"},
			want:  3,
		},
		{
			name:  "only today",
			today: "2024-06-05",
			dates: []string{"2024-06-05"},
			want:  1,
		},
		{
			name:  "month boundary",
			today: "2024-06-01",
			dates: []string{"2024-05-30", "2024-05-31", "2024-06-01"},
			want:  3,
		},
		{
			name:  "empty input",
			today: "2024-06-05",
			dates: nil,
			want:  0,
		},
		{
			name:  "future dates are ignored",
			today: "2024-06-05",
			dates: []string{"2024-06-05", "2024-06-09"},
			want:  1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StreakEndingAt(tc.today, tc.dates); got != tc.want {
				t.Errorf("StreakEndingAt(%q, %v) = %d, want %d", tc.today, tc.dates, got, tc.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single date", []string{"2024-01-01"}, 1},
		{"two runs, longest first", []string{"2024-01-01", "2024-01-02", "2024-01-04"}, 2},
		{"duplicates count once", []string{"2024-01-01", "2024-01-01", "2024-01-02"}, 2},
		{"run across month boundary", []string{"2024-01-30", "2024-01-31", "2024-02-01"}, 3},
		{"unordered", []string{"2024-03-03", "2024-03-01", "2024-03-02"}, 3},
		{"no consecutive days", []string{"2024-01-01", "2024-01-03", "2024-01-05"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestStreak(tc.dates); got != tc.want {
				t.Errorf("LongestStreak(%v) = %d, want %d", tc.dates, got, tc.want)
			}
		})
	}
}

func TestMondayOfSundayOf(t *testing.T) {
	cases := []struct {
		name       string
		date       string
		wantMonday string
		wantSunday string
	}{
		{"midweek Wednesday", "2024-06-05", "2024-06-03", "2024-06-09"},
		{"Monday maps to itself", "2024-06-03", "2024-06-03", "2024-06-09"},
		{"Sunday belongs to the ending week", "2024-06-09", "2024-06-03", "2024-06-09"},
		{"Saturday", "2024-06-08", "2024-06-03", "2024-06-09"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm, ok := Parse(tc.date)
			if !ok {
				t.Fatalf("Parse(%q) failed", tc.date)
			}
			if got := FormatDate(MondayOf(tm)); got != tc.wantMonday {
				t.Errorf("MondayOf(%s) = %s, want %s", tc.date, got, tc.wantMonday)
			}
			if got := FormatDate(SundayOf(tm)); got != tc.wantSunday {
				t.Errorf("SundayOf(%s) = %s, want %s", tc.date, got, tc.wantSunday)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		month     string
		wantFirst string
		wantLast  string
		wantOK    bool
	}{
		{"2024-02", "2024-02-01", "2024-02-29", true},
		{"2023-02", "2023-02-01", "2023-02-28", true},
		{"2024-06", "2024-06-01", "2024-06-30", true},
		{"2024-12", "2024-12-01", "2024-12-31", true},
		{"2024-13", "", "", false},
		{"junk", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		first, last, ok := MonthBounds(tc.month)
		if ok != tc.wantOK {
			t.Errorf("MonthBounds(%q) ok = %v, want %v", tc.month, ok, tc.wantOK)
			continue
		}
		if first != tc.wantFirst || last != tc.wantLast {
			t.Errorf("MonthBounds(%q) = (%s, %s), want (%s, %s)", tc.month, first, last, tc.wantFirst, tc.wantLast)
		}
	}
}

func TestPrevNextDay(t *testing.T) {
	if got := NextDay("2024-01-31"); got != "2024-02-01" {
		t.Errorf("NextDay(2024-01-31) = %s, want 2024-02-01", got)
	}
	if got := PrevDay("2024-03-01"); got != "2024-02-29" {
		t.Errorf("PrevDay(2024-03-01) = %s, want 2024-02-29", got)
	}
	if got := NextDay("not-a-date"); got != "" {
		t.Errorf("NextDay on malformed input = %q, want empty", got)
	}
	if got := PrevDay(""); got != "" {
		t.Errorf("PrevDay on empty input = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	tm, ok := Parse("2024-06-05")
	if !ok {
		t.Fatal("Parse rejected a valid date")
	}
	if tm.Year() != 2024 || tm.Month() != time.June || tm.Day() != 5 {
		t.Errorf("Parse(2024-06-05) = %v", tm)
	}
	if _, ok := Parse("2024-6-5"); ok {
		t.Error("Parse accepted a non-canonical date")
	}
	if _, ok := Parse("hello"); ok {
		t.Error("Parse accepted garbage")
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2024-06-05"); got != "Wed, Jun 5" {
		t.Errorf("DisplayDate(2024-06-05) = %q, want %q", got, "Wed, Jun 5")
	}
	if got := DisplayDate("garbage"); got != "garbage" {
		t.Errorf("DisplayDate on malformed input = %q, want input unchanged", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2024-06"); got != "June 2024" {
		t.Errorf("MonthLabel(2024-06) = %q, want %q", got, "June 2024")
	}
	if got := MonthLabel("nope"); got != "nope" {
		t.Errorf("MonthLabel on malformed input = %q, want input unchanged", got)
	}
}
