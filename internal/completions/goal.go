package completions

import "time"

type GoalProgress struct {
	Completed int       `json:"completed"`
	Goal      int       `json:"goal"`
	Met       bool      `json:"met"`
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
}

// ISOWeekBounds returns [monday 00:00 UTC, next monday) around t.
func ISOWeekBounds(t time.Time) (time.Time, time.Time) {
	start := weekStart(t)
	return start, start.AddDate(0, 0, 7)
}

func newGoalProgress(completed, goal int, weekStart, weekEnd time.Time) GoalProgress {
	return GoalProgress{
		Completed: completed,
		Goal:      goal,
		Met:       goal >= 1 && completed >= goal,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}
}
