package insight

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tkarvonen/athlete-journal/internal/stats"
)

func TestMonthlyEmpty(t *testing.T) {
	got := Monthly(stats.Summary{})
	want := []string{"No entries this month yet. Start logging to see insights!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Monthly(empty) = %v, want %v", got, want)
	}
}

func TestMonthlyStrongMonth(t *testing.T) {
	s := stats.Summary{
		EntryCount:    12,
		TotalMinutes:  620,
		AvgEffort:     4.7,
		AvgConfidence: 4.2,
		SoreDays:      0,
		GreatDays:     8,
	}
	got := Monthly(s)
	want := []string{
		"🔥 Incredible work this month — you put in 620 minutes of training. That kind of commitment is how champions are made!",
		"⚡ Your average effort was 4.7/5 and confidence 4.2/5 — you're showing up with full energy and believing in yourself!",
		"✨ Zero sore or hurt days this month — your body is recovering well. You felt great most days!",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Monthly = %v, want %v", got, want)
	}
}

func TestMonthlyDeterministic(t *testing.T) {
	s := stats.Summary{
		EntryCount:    5,
		TotalMinutes:  340,
		AvgEffort:     3.8,
		AvgConfidence: 3.2,
		SoreDays:      2,
	}
	first := Monthly(s)
	for i := 0; i < 10; i++ {
		if got := Monthly(s); !reflect.DeepEqual(got, first) {
			t.Fatalf("Monthly output changed between calls: %v then %v", first, got)
		}
	}
}

func TestMonthlyVolumeTiers(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		marker  string
	}{
		{"high volume", 600, "🔥"},
		{"mid volume", 300, "💪"},
		{"low volume", 120, "📈"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stats.Summary{EntryCount: 4, TotalMinutes: tc.minutes, AvgEffort: 3, AvgConfidence: 3}
			got := Monthly(s)
			if len(got) != 3 {
				t.Fatalf("got %d insights, want 3", len(got))
			}
			if !strings.HasPrefix(got[0], tc.marker) {
				t.Errorf("volume insight = %q, want prefix %q", got[0], tc.marker)
			}
		})
	}
}

func TestMonthlyEffortConfidenceTiers(t *testing.T) {
	cases := []struct {
		name       string
		effort     float64
		confidence float64
		marker     string
	}{
		{"high effort and confidence", 4.5, 4.0, "⚡"},
		{"hard work, low confidence", 4.2, 3.0, "🎯"},
		{"confident, low effort", 3.0, 4.4, "😎"},
		{"middling both", 3.5, 3.5, "📊"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stats.Summary{EntryCount: 4, TotalMinutes: 100, AvgEffort: tc.effort, AvgConfidence: tc.confidence}
			got := Monthly(s)
			if !strings.HasPrefix(got[1], tc.marker) {
				t.Errorf("effort insight = %q, want prefix %q", got[1], tc.marker)
			}
		})
	}
}

func TestMonthlySorenessTiers(t *testing.T) {
	base := stats.Summary{EntryCount: 10, TotalMinutes: 100, AvgEffort: 3, AvgConfidence: 3}

	t.Run("zero sore days, mostly great", func(t *testing.T) {
		s := base
		s.GreatDays = 7 // > 60% of 10 entries
		got := Monthly(s)
		want := "✨ Zero sore or hurt days this month — your body is recovering well. You felt great most days!"
		if got[2] != want {
			t.Errorf("soreness insight = %q, want %q", got[2], want)
		}
	})
	t.Run("zero sore days, mixed", func(t *testing.T) {
		s := base
		s.GreatDays = 4
		got := Monthly(s)
		want := "✨ Zero sore or hurt days this month — your body is recovering well. Keep listening to your body."
		if got[2] != want {
			t.Errorf("soreness insight = %q, want %q", got[2], want)
		}
	})
	t.Run("one sore day is singular", func(t *testing.T) {
		s := base
		s.SoreDays = 1
		got := Monthly(s)
		want := "🩹 You had 1 sore day this month — totally normal for a hard-working athlete. Make sure to keep up recovery habits!"
		if got[2] != want {
			t.Errorf("soreness insight = %q, want %q", got[2], want)
		}
	})
	t.Run("three sore days is plural", func(t *testing.T) {
		s := base
		s.SoreDays = 3
		got := Monthly(s)
		if !strings.Contains(got[2], "3 sore days") {
			t.Errorf("soreness insight = %q, want it to mention 3 sore days", got[2])
		}
	})
	t.Run("many sore days warns", func(t *testing.T) {
		s := base
		s.SoreDays = 5
		got := Monthly(s)
		if !strings.HasPrefix(got[2], "⚠️") {
			t.Errorf("soreness insight = %q, want warning prefix", got[2])
		}
	})
}

func TestMonthlyCapsAtThree(t *testing.T) {
	s := stats.Summary{EntryCount: 20, TotalMinutes: 900, AvgEffort: 4.9, AvgConfidence: 4.8, GreatDays: 18}
	if got := Monthly(s); len(got) != 3 {
		t.Errorf("got %d insights, want at most 3", len(got))
	}
}

func TestYearlyEmpty(t *testing.T) {
	got := Yearly(stats.Summary{})
	want := []string{"No entries this year yet. Start logging your training!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Yearly(empty) = %v, want %v", got, want)
	}
}

func TestYearly(t *testing.T) {
	cases := []struct {
		name string
		s    stats.Summary
		want []string
	}{
		{
			name: "elite hours with multiple sports",
			s:    stats.Summary{EntryCount: 80, Hours: 120, SportsCount: 3},
			want: []string{
				"🏅 You trained for over 120 hours this year — that's elite-level dedication!",
				"🎽 You played 3 different sports this year. Multi-sport athletes develop better all-around athleticism!",
			},
		},
		{
			name: "modest hours, single sport",
			s:    stats.Summary{EntryCount: 20, Hours: 40, SportsCount: 1},
			want: []string{
				"📆 You put in 40 hours of training this year. Every hour makes you better!",
			},
		},
		{
			name: "two sports stays single message",
			s:    stats.Summary{EntryCount: 20, Hours: 40, SportsCount: 2},
			want: []string{
				"📆 You put in 40 hours of training this year. Every hour makes you better!",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Yearly(tc.s); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Yearly = %v, want %v", got, tc.want)
			}
		})
	}
}
