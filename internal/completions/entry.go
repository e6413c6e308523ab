package completions

import (
	"time"

	"github.com/2beens/gymprogress/internal/programs"
)

// LogEntry is one finished workout attempt. Stations is a snapshot copy taken at
// completion time, later program edits do not reach it.
type LogEntry struct {
	ID          int64              `json:"id"`
	UserID      int                `json:"userId"`
	ProgramID   string             `json:"programId"`
	WorkoutID   string             `json:"workOutId"`
	WeekNumber  int                `json:"weekNumber"`
	Stations    []programs.Station `json:"stations"`
	Completed   bool               `json:"completed"`
	CompletedAt time.Time          `json:"completedAt"`
	EditedAt    *time.Time         `json:"editedAt,omitempty"`
}
