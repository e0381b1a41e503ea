// Package dates contains the calendar arithmetic used across the journal:
// local-day formatting, ISO week boundaries (Monday first), streak
// calculations and display formatting.  All functions operate on plain
// YYYY-MM-DD strings so they compose directly with the values stored in
// journal_entries.entry_date.  Dates are always interpreted in the
// server's local calendar.
package dates

import (
	"sort"
	"time"
)

// Layout is the canonical wire and storage format for calendar dates.
const Layout = "2006-01-02"

// FormatDate renders a time.Time as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}

// Parse converts a YYYY-MM-DD string into a time.Time at local midnight.
// The boolean reports whether the input was well formed.
func Parse(date string) (time.Time, bool) {
	t, err := time.ParseInLocation(Layout, date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MondayOf returns the Monday of the week containing t.  Weeks run
// Monday through Sunday; a Sunday therefore maps six days back.
func MondayOf(t time.Time) time.Time {
	dow := int(t.Weekday()) // 0=Sunday
	diff := 1 - dow
	if dow == 0 {
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

// SundayOf returns the Sunday ending the week containing t.
func SundayOf(t time.Time) time.Time {
	dow := int(t.Weekday())
	diff := 7 - dow
	if dow == 0 {
		diff = 0
	}
	return t.AddDate(0, 0, diff)
}

// WeekMonday returns the Monday of the current local week as YYYY-MM-DD.
func WeekMonday() string {
	return FormatDate(MondayOf(time.Now()))
}

// WeekSunday returns the Sunday of the current local week as YYYY-MM-DD.
func WeekSunday() string {
	return FormatDate(SundayOf(time.Now()))
}

// PrevDay returns the calendar day before the given date.  Malformed
// input yields an empty string.
func PrevDay(date string) string {
	t, ok := Parse(date)
	if !ok {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, -1))
}

// NextDay returns the calendar day after the given date.  Malformed
// input yields an empty string.
func NextDay(date string) string {
	t, ok := Parse(date)
	if !ok {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, 1))
}

// CalcStreak counts consecutive logged days ending today.  Today itself
// is counted only when present; a missing day anywhere in the walk ends
// the streak immediately.
func CalcStreak(dateList []string) int {
	return StreakEndingAt(Today(), dateList)
}

// StreakEndingAt is CalcStreak with an explicit "today", which keeps the
// walk deterministic for callers that already resolved the current date.
// The input may be unordered and contain duplicates.  The walk
// deduplicates, sorts descending and steps backward one day at a time;
// the first date earlier than the cursor without matching it breaks the
// run for good.
func StreakEndingAt(today string, dateList []string) int {
	if len(dateList) == 0 {
		return 0
	}
	uniq := dedupe(dateList)
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))
	streak := 0
	cursor := today
	for _, d := range uniq {
		if d == cursor {
			streak++
			cursor = PrevDay(cursor)
		} else if d < cursor {
			break
		}
	}
	return streak
}

// LongestStreak returns the length of the longest run of consecutive
// calendar days anywhere in the input.  A single date is a run of one;
// empty input yields zero.
func LongestStreak(dateList []string) int {
	if len(dateList) == 0 {
		return 0
	}
	uniq := dedupe(dateList)
	sort.Strings(uniq)
	max, cur := 1, 1
	for i := 1; i < len(uniq); i++ {
		if NextDay(uniq[i-1]) == uniq[i] {
			cur++
			if cur > max {
				max = cur
			}
		} else {
			cur = 1
		}
	}
	return max
}

// DisplayDate renders a stored date for humans, e.g. "Thu, Jun 5".
// Malformed input is returned unchanged.
func DisplayDate(date string) string {
	t, ok := Parse(date)
	if !ok {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// MonthLabel renders a YYYY-MM month as "June 2024".  Malformed input is
// returned unchanged.
func MonthLabel(month string) string {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// MonthBounds returns the first and last calendar day of a YYYY-MM month.
// The boolean reports whether the month string was well formed.
func MonthBounds(month string) (string, string, bool) {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return "", "", false
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last), true
}

// dedupe returns the distinct values of the input, preserving nothing
// about order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
