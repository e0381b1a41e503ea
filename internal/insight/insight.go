// Package insight turns a window's aggregate metrics into short
// encouragement messages.  Selection is a fixed decision table over
// numeric thresholds; the output is a deterministic function of the
// input summary, so identical metrics always produce identical text in
// identical order.
package insight

import (
	"fmt"

	"github.com/tkarvonen/athlete-journal/internal/stats"
)

// Monthly returns at most three messages for a month's summary, in
// fixed order: training volume, effort and confidence, body and
// recovery.  An empty month yields a single prompt to start logging.
func Monthly(s stats.Summary) []string {
	if s.EntryCount == 0 {
		return []string{"No entries this month yet. Start logging to see insights!"}
	}

	insights := make([]string, 0, 3)

	// Training volume
	switch {
	case s.TotalMinutes >= 600:
		insights = append(insights, fmt.Sprintf("🔥 Incredible work this month — you put in %d minutes of training. That kind of commitment is how champions are made!", s.TotalMinutes))
	case s.TotalMinutes >= 300:
		insights = append(insights, fmt.Sprintf("💪 Solid month! You trained for %d minutes total. Keep building on that consistency.", s.TotalMinutes))
	default:
		insights = append(insights, fmt.Sprintf("📈 You logged %d minutes this month. Every session counts — even small ones add up over time!", s.TotalMinutes))
	}

	// Effort and confidence
	switch {
	case s.AvgEffort >= 4.5 && s.AvgConfidence >= 4:
		insights = append(insights, fmt.Sprintf("⚡ Your average effort was %.1f/5 and confidence %.1f/5 — you're showing up with full energy and believing in yourself!", s.AvgEffort, s.AvgConfidence))
	case s.AvgEffort >= 4 && s.AvgConfidence < 3.5:
		insights = append(insights, fmt.Sprintf("🎯 You're working hard (avg effort %.1f/5), but confidence averaged %.1f/5. Remember: hard work builds confidence over time — trust the process!", s.AvgEffort, s.AvgConfidence))
	case s.AvgConfidence >= 4 && s.AvgEffort < 3.5:
		insights = append(insights, fmt.Sprintf("😎 Great confidence this month (%.1f/5)! Try cranking up the effort a bit — you clearly believe in yourself, now push the gas pedal!", s.AvgConfidence))
	default:
		insights = append(insights, fmt.Sprintf("📊 This month averaged %.1f/5 effort and %.1f/5 confidence. Focus on one area to improve next month!", s.AvgEffort, s.AvgConfidence))
	}

	// Body and recovery
	switch {
	case s.SoreDays == 0:
		tail := "Keep listening to your body."
		if float64(s.GreatDays) > float64(s.EntryCount)*0.6 {
			tail = "You felt great most days!"
		}
		insights = append(insights, fmt.Sprintf("✨ Zero sore or hurt days this month — your body is recovering well. %s", tail))
	case s.SoreDays <= 3:
		plural := ""
		if s.SoreDays > 1 {
			plural = "s"
		}
		insights = append(insights, fmt.Sprintf("🩹 You had %d sore day%s this month — totally normal for a hard-working athlete. Make sure to keep up recovery habits!", s.SoreDays, plural))
	default:
		insights = append(insights, fmt.Sprintf("⚠️ %d days of soreness or discomfort this month. It might be worth talking to your coach about recovery — rest is part of training too!", s.SoreDays))
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

// Yearly returns at most two messages for a year's summary: total hours,
// plus a multi-sport message when three or more sports were logged.
func Yearly(s stats.Summary) []string {
	if s.EntryCount == 0 {
		return []string{"No entries this year yet. Start logging your training!"}
	}

	insights := make([]string, 0, 2)
	if s.Hours >= 100 {
		insights = append(insights, fmt.Sprintf("🏅 You trained for over %d hours this year — that's elite-level dedication!", s.Hours))
	} else {
		insights = append(insights, fmt.Sprintf("📆 You put in %d hours of training this year. Every hour makes you better!", s.Hours))
	}
	if s.SportsCount >= 3 {
		insights = append(insights, fmt.Sprintf("🎽 You played %d different sports this year. Multi-sport athletes develop better all-around athleticism!", s.SportsCount))
	}
	return insights
}
