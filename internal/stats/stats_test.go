package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/tkarvonen/athlete-journal/internal/model"
)

func row(sport string, minutes int) model.EntrySport {
	return model.EntrySport{Sport: sport, Minutes: minutes}
}

func mkEntry(date string, effort, confidence int, feelBefore string, rows ...model.EntrySport) model.JournalEntry {
	e := model.JournalEntry{
		EntryDate:  date,
		Effort:     effort,
		Confidence: confidence,
		Sports:     rows,
	}
	if feelBefore != "" {
		b := feelBefore
		e.BodyFeelBefore = &b
	}
	return e
}

func TestSummarizeEmptyWindow(t *testing.T) {
	s := Summarize(nil, "2024-06-01", "2024-06-30")
	if s.EntryCount != 0 || s.TotalMinutes != 0 || s.DaysLogged != 0 {
		t.Errorf("empty window produced counts: %+v", s)
	}
	if s.AvgEffort != 0 || s.AvgConfidence != 0 {
		t.Errorf("empty window averages must be 0, got effort=%v confidence=%v", s.AvgEffort, s.AvgConfidence)
	}
	if s.MainSport != "" || s.BestStreak != 0 {
		t.Errorf("empty window extras: main=%q streak=%d", s.MainSport, s.BestStreak)
	}
}

func TestSummarize(t *testing.T) {
	entries := []model.JournalEntry{
		mkEntry("2024-06-03", 5, 4, model.BodyFeelGreat, row("Soccer", 60), row("Tennis", 30)),
		mkEntry("2024-06-04", 4, 3, model.BodyFeelSore, row("Soccer", 45)),
		mkEntry("2024-05-20", 1, 1, model.BodyFeelHurt, row("Golf", 500)), // outside the window
	}
	s := Summarize(entries, "2024-06-01", "2024-06-30")

	if s.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", s.EntryCount)
	}
	if s.TotalMinutes != 135 {
		t.Errorf("TotalMinutes = %d, want 135", s.TotalMinutes)
	}
	if s.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2", s.DaysLogged)
	}
	if s.AvgEffort != 4.5 {
		t.Errorf("AvgEffort = %v, want 4.5", s.AvgEffort)
	}
	if s.AvgConfidence != 3.5 {
		t.Errorf("AvgConfidence = %v, want 3.5", s.AvgConfidence)
	}
	if s.SoreDays != 1 {
		t.Errorf("SoreDays = %d, want 1", s.SoreDays)
	}
	if s.GreatDays != 1 {
		t.Errorf("GreatDays = %d, want 1", s.GreatDays)
	}
	if s.Hours != 2 {
		t.Errorf("Hours = %d, want 2", s.Hours)
	}
	if s.SportsCount != 2 {
		t.Errorf("SportsCount = %d, want 2", s.SportsCount)
	}
	if s.MainSport != "Soccer" {
		t.Errorf("MainSport = %q, want Soccer", s.MainSport)
	}
	if s.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", s.BestStreak)
	}
}

func TestSummarizeHurtCountsAsSore(t *testing.T) {
	entries := []model.JournalEntry{
		mkEntry("2024-06-03", 3, 3, model.BodyFeelHurt, row("Soccer", 30)),
	}
	s := Summarize(entries, "2024-06-01", "2024-06-30")
	if s.SoreDays != 1 {
		t.Errorf("SoreDays = %d, want 1 for a Hurt entry", s.SoreDays)
	}
}

func TestSummarizeMainSportTieBreaks(t *testing.T) {
	t.Run("more distinct entries wins the minute tie", func(t *testing.T) {
		entries := []model.JournalEntry{
			mkEntry("2024-06-03", 3, 3, "", row("Soccer", 30), row("Tennis", 60)),
			mkEntry("2024-06-04", 3, 3, "", row("Soccer", 30)),
		}
		s := Summarize(entries, "2024-06-01", "2024-06-30")
		if s.MainSport != "Soccer" {
			t.Errorf("MainSport = %q, want Soccer", s.MainSport)
		}
	})
	t.Run("name ascending breaks the full tie", func(t *testing.T) {
		entries := []model.JournalEntry{
			mkEntry("2024-06-03", 3, 3, "", row("Tennis", 60)),
			mkEntry("2024-06-04", 3, 3, "", row("Basketball", 60)),
		}
		s := Summarize(entries, "2024-06-01", "2024-06-30")
		if s.MainSport != "Basketball" {
			t.Errorf("MainSport = %q, want Basketball", s.MainSport)
		}
	})
	t.Run("identical input always selects the same sport", func(t *testing.T) {
		entries := []model.JournalEntry{
			mkEntry("2024-06-03", 3, 3, "", row("Tennis", 60), row("Golf", 60), row("Hockey", 60)),
		}
		first := Summarize(entries, "2024-06-01", "2024-06-30").MainSport
		for i := 0; i < 20; i++ {
			if got := Summarize(entries, "2024-06-01", "2024-06-30").MainSport; got != first {
				t.Fatalf("MainSport changed between runs: %q then %q", first, got)
			}
		}
	})
}

func TestWeeklyBuckets(t *testing.T) {
	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.Local) // a Wednesday
	entries := []model.JournalEntry{
		mkEntry("2024-06-04", 3, 3, "", row("Soccer", 40), row("Tennis", 20)),
		mkEntry("2024-05-27", 3, 3, "", row("Soccer", 30)), // previous week's Monday
		mkEntry("2024-04-10", 3, 3, "", row("Golf", 500)),  // before the charted range
	}
	buckets := WeeklyBuckets(entries, now)

	if len(buckets) != 8 {
		t.Fatalf("got %d buckets, want 8", len(buckets))
	}
	if buckets[0].Monday != "2024-04-15" {
		t.Errorf("first bucket Monday = %s, want 2024-04-15", buckets[0].Monday)
	}
	if buckets[7].Monday != "2024-06-03" {
		t.Errorf("last bucket Monday = %s, want 2024-06-03", buckets[7].Monday)
	}
	if buckets[7].Minutes != 60 {
		t.Errorf("current week minutes = %d, want 60", buckets[7].Minutes)
	}
	if buckets[6].Minutes != 30 {
		t.Errorf("previous week minutes = %d, want 30", buckets[6].Minutes)
	}
	for i := 0; i < 6; i++ {
		if buckets[i].Minutes != 0 {
			t.Errorf("bucket %s minutes = %d, want 0", buckets[i].Monday, buckets[i].Minutes)
		}
	}
	if buckets[7].Label != "Jun 3" {
		t.Errorf("last bucket label = %q, want %q", buckets[7].Label, "Jun 3")
	}
}

func TestSportBreakdown(t *testing.T) {
	entries := []model.JournalEntry{
		mkEntry("2024-06-03", 3, 3, "", row("Soccer", 60), row("Tennis", 90)),
		mkEntry("2024-06-04", 3, 3, "", row("Soccer", 45), row("Basketball", 90)),
	}
	got := SportBreakdown(entries)
	want := []SportMinutes{
		{Sport: "Soccer", Minutes: 105},
		{Sport: "Basketball", Minutes: 90},
		{Sport: "Tennis", Minutes: 90},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SportBreakdown = %v, want %v", got, want)
	}
}

func TestSportBreakdownEmpty(t *testing.T) {
	if got := SportBreakdown(nil); len(got) != 0 {
		t.Errorf("SportBreakdown(nil) = %v, want empty", got)
	}
}
