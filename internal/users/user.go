package users

import "time"

const DefaultWeeklyGoal = 3

type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// ProgramID binds the user to a program; nil means the globally active one.
	ProgramID         *string    `json:"programId,omitempty"`
	WeeklyWorkOutGoal int        `json:"weeklyWorkOutGoal"`
	TotalWorkouts     int        `json:"totalWorkouts"`
	WorkoutsInWeek    int        `json:"workoutsInWeek"`
	Streak            int        `json:"streak"`
	LastActiveAt      *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}
