// Package stats reduces collections of journal entries into the summary
// figures shown on the home, stats and summary screens.  Every function
// is a pure computation over in-memory rows; the repository layer is
// responsible for fetching the right window.
package stats

import (
	"sort"
	"time"

	"github.com/tkarvonen/athlete-journal/internal/dates"
	"github.com/tkarvonen/athlete-journal/internal/model"
)

// Summary carries the aggregate metrics for one date window.  Averages
// are 0 when the window holds no entries; division by zero never occurs.
type Summary struct {
	TotalMinutes  int     `json:"total_minutes"`
	DaysLogged    int     `json:"days_logged"`
	EntryCount    int     `json:"entry_count"`
	AvgEffort     float64 `json:"avg_effort"`
	AvgConfidence float64 `json:"avg_confidence"`
	SoreDays      int     `json:"sore_days"`
	GreatDays     int     `json:"great_days"`
	Hours         int     `json:"hours"`
	SportsCount   int     `json:"sports_count"`
	MainSport     string  `json:"main_sport"`
	BestStreak    int     `json:"best_streak"`
}

// WeekBucket is one Monday-to-Sunday window of the weekly minutes chart.
type WeekBucket struct {
	Monday  string `json:"monday"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// SportMinutes is one row of the per-sport minute breakdown.
type SportMinutes struct {
	Sport   string `json:"sport"`
	Minutes int    `json:"minutes"`
}

// Summarize reduces the entries whose entry_date falls inside
// [start, end] into a Summary.  Entries are expected to carry their
// joined sport rows; total minutes and the sport figures come from
// those rows while ratings and body feels come from the entry header.
func Summarize(entries []model.JournalEntry, start, end string) Summary {
	var s Summary
	var effortSum, confSum int
	dateSet := make(map[string]struct{})
	windowDates := make([]string, 0, len(entries))

	type sportAgg struct {
		minutes int
		entries int
	}
	bySport := make(map[string]*sportAgg)

	for _, e := range entries {
		if e.EntryDate < start || e.EntryDate > end {
			continue
		}
		s.EntryCount++
		effortSum += e.Effort
		confSum += e.Confidence
		if _, ok := dateSet[e.EntryDate]; !ok {
			dateSet[e.EntryDate] = struct{}{}
			windowDates = append(windowDates, e.EntryDate)
		}
		if e.BodyFeelBefore != nil {
			switch *e.BodyFeelBefore {
			case model.BodyFeelSore, model.BodyFeelHurt:
				s.SoreDays++
			case model.BodyFeelGreat:
				s.GreatDays++
			}
		}
		seen := make(map[string]struct{}, len(e.Sports))
		for _, row := range e.Sports {
			s.TotalMinutes += row.Minutes
			agg := bySport[row.Sport]
			if agg == nil {
				agg = &sportAgg{}
				bySport[row.Sport] = agg
			}
			agg.minutes += row.Minutes
			if _, ok := seen[row.Sport]; !ok {
				seen[row.Sport] = struct{}{}
				agg.entries++
			}
		}
	}

	s.DaysLogged = len(dateSet)
	s.Hours = s.TotalMinutes / 60
	s.SportsCount = len(bySport)
	s.BestStreak = dates.LongestStreak(windowDates)
	if s.EntryCount > 0 {
		s.AvgEffort = float64(effortSum) / float64(s.EntryCount)
		s.AvgConfidence = float64(confSum) / float64(s.EntryCount)
	}

	// Most-active sport: largest minute sum, then most distinct entries,
	// then sport name ascending so identical input always selects the
	// same sport.
	names := make([]string, 0, len(bySport))
	for name := range bySport {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := bySport[names[i]], bySport[names[j]]
		if a.minutes != b.minutes {
			return a.minutes > b.minutes
		}
		if a.entries != b.entries {
			return a.entries > b.entries
		}
		return names[i] < names[j]
	})
	if len(names) > 0 {
		s.MainSport = names[0]
	}
	return s
}

// WeeklyBuckets builds the 8 most recent Monday-to-Sunday windows ending
// with the week containing now.  Every bucket appears even when it sums
// to zero.  Entries are assigned by the Monday of their own week, so
// dates outside the charted range simply find no bucket.
func WeeklyBuckets(entries []model.JournalEntry, now time.Time) []WeekBucket {
	const weeks = 8
	buckets := make([]WeekBucket, 0, weeks)
	index := make(map[string]int, weeks)
	for i := weeks - 1; i >= 0; i-- {
		monday := dates.MondayOf(now).AddDate(0, 0, -7*i)
		key := dates.FormatDate(monday)
		index[key] = len(buckets)
		buckets = append(buckets, WeekBucket{
			Monday: key,
			Label:  monday.Format("Jan 2"),
		})
	}
	for _, e := range entries {
		t, ok := dates.Parse(e.EntryDate)
		if !ok {
			continue
		}
		idx, ok := index[dates.FormatDate(dates.MondayOf(t))]
		if !ok {
			continue
		}
		for _, row := range e.Sports {
			buckets[idx].Minutes += row.Minutes
		}
	}
	return buckets
}

// SportBreakdown sums minutes per sport across all sport rows of the
// given entries, sorted by minutes descending with name ascending as the
// stable tie-break.
func SportBreakdown(entries []model.JournalEntry) []SportMinutes {
	totals := make(map[string]int)
	for _, e := range entries {
		for _, row := range e.Sports {
			totals[row.Sport] += row.Minutes
		}
	}
	out := make([]SportMinutes, 0, len(totals))
	for sport, minutes := range totals {
		out = append(out, SportMinutes{Sport: sport, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}
