package programs

import (
	"sort"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
)

const hoursInDay = 24

// weekOrder returns week positions sorted by ascending week number.
func weekOrder(p *Program) []int {
	order := make([]int, len(p.Weeks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return p.Weeks[order[a]].WeekNumber < p.Weeks[order[b]].WeekNumber
	})
	return order
}

func (p *Program) week(weekNumber int) (*Week, error) {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == weekNumber {
			return &p.Weeks[i], nil
		}
	}
	return nil, apperr.NotFound("week %d not found in program %s", weekNumber, p.ID)
}

// ResolveWorkout finds the workout with the given id and the number of its week.
// Weeks are scanned in ascending week number order.
func ResolveWorkout(p *Program, workoutID string) (*Workout, int, error) {
	if p == nil {
		return nil, 0, apperr.NotFound("program not found")
	}
	if workoutID == "" {
		return nil, 0, apperr.Validation("workout id is required")
	}
	for _, wi := range weekOrder(p) {
		week := &p.Weeks[wi]
		for i := range week.Workouts {
			if week.Workouts[i].ID == workoutID {
				return &week.Workouts[i], week.WeekNumber, nil
			}
		}
	}
	return nil, 0, apperr.NotFound("workout %s not found in program %s", workoutID, p.ID)
}

// ScheduledWorkout picks the workout for the given day. A workout explicitly dated
// on that UTC calendar day wins; otherwise the day's offset from the program start
// selects week offset/7+1 and the workout at position offset%7 within it.
func ScheduledWorkout(p *Program, day time.Time) (*Workout, int, error) {
	if p == nil {
		return nil, 0, apperr.NotFound("program not found")
	}
	day = truncateToDay(day)

	order := weekOrder(p)
	for _, wi := range order {
		week := &p.Weeks[wi]
		for i := range week.Workouts {
			d := week.Workouts[i].Date
			if d != nil && truncateToDay(*d).Equal(day) {
				return &week.Workouts[i], week.WeekNumber, nil
			}
		}
	}

	start := truncateToDay(p.StartDate)
	end := truncateToDay(p.EndDate)
	if day.Before(start) || day.After(end) {
		return nil, 0, apperr.NotFound("no workout scheduled on %s: outside program %s", day.Format(time.DateOnly), p.ID)
	}

	elapsedDays := int(day.Sub(start).Hours() / hoursInDay)
	weekNumber := elapsedDays/7 + 1
	position := elapsedDays % 7

	week, err := p.week(weekNumber)
	if err != nil {
		return nil, 0, err
	}
	if position >= len(week.Workouts) {
		return nil, 0, apperr.NotFound("no workout scheduled on %s (rest day)", day.Format(time.DateOnly))
	}
	return &week.Workouts[position], weekNumber, nil
}

// StationForTab returns the station bound to a tab, tab numbers being 1-based station positions.
func StationForTab(w *Workout, tabNumber int) (*Station, error) {
	if tabNumber < 1 {
		return nil, apperr.Validation("tab number must be positive, got %d", tabNumber)
	}
	if w == nil || tabNumber > len(w.Stations) {
		return nil, apperr.NotFound("no station for tab %d", tabNumber)
	}
	return &w.Stations[tabNumber-1], nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
