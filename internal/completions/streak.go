package completions

import (
	"sort"
	"time"
)

const DateLayout = "02-01-2006"

type StreakResult struct {
	Streak int `json:"streak"`
	// LastWeek is the ISO week number of the week that last moved the streak.
	LastWeek *int     `json:"lastWeek"`
	Dates    []string `json:"dates"`
}

// CalculateStreak counts consecutive ISO weeks with completions in a single pass
// over the entries in completedAt order. Repeats within a week are no-ops and a
// gap of two or more weeks restarts the streak at 1. Weeks are compared by an
// absolute ordinal, so the last week of a year and week 1 of the next are consecutive.
func CalculateStreak(entries []LogEntry) StreakResult {
	sorted := make([]LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
	})

	result := StreakResult{
		Dates: make([]string, 0, len(sorted)),
	}

	var lastOrdinal *int
	for _, e := range sorted {
		completedAt := e.CompletedAt.UTC()
		result.Dates = append(result.Dates, completedAt.Format(DateLayout))

		ordinal := weekOrdinal(completedAt)
		switch {
		case lastOrdinal == nil || ordinal == *lastOrdinal+1:
			result.Streak++
		case ordinal != *lastOrdinal:
			result.Streak = 1
		default:
			continue
		}
		lastOrdinal = &ordinal
		_, isoWeek := completedAt.ISOWeek()
		result.LastWeek = &isoWeek
	}

	return result
}

// weekOrdinal numbers ISO weeks continuously across years.
func weekOrdinal(t time.Time) int {
	monday := weekStart(t)
	// 1970-01-05 is the first Monday after the unix epoch
	epochMonday := time.Date(1970, 1, 5, 0, 0, 0, 0, time.UTC)
	return int(monday.Sub(epochMonday).Hours()) / (24 * 7)
}

// weekStart returns Monday 00:00 UTC of t's ISO week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday -> 0
	return day.AddDate(0, 0, -offset)
}
