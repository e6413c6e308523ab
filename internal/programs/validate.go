package programs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymprogress/internal/apperr"
)

type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type Violations []Violation

// Err folds the violations into a single validation error, nil when there are none.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		if violation.Path == "" {
			msgs = append(msgs, violation.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", violation.Path, violation.Message))
	}
	return apperr.Validation("%s", strings.Join(msgs, "; "))
}

func (v *Violations) add(path, format string, args ...any) {
	*v = append(*v, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}

type countCheck int

const (
	// countExact requires len(stations) == numberOfStations.
	countExact countCheck = iota
	// countAtMost tolerates an under-populated workout being filled up.
	countAtMost
)

// Validate runs the full read-validate cycle over a stored program.
func Validate(p *Program) Violations {
	var v Violations
	if p == nil {
		v.add("", "program is missing")
		return v
	}
	if strings.TrimSpace(p.Title) == "" {
		v.add("", "program title is required")
	}
	if p.EndDate.Before(p.StartDate) {
		v.add("", "program ends before it starts")
	}

	numbers := make([]int, 0, len(p.Weeks))
	for _, w := range p.Weeks {
		numbers = append(numbers, w.WeekNumber)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			v.add("", "week numbers must be unique and contiguous from 1, got %v", numbers)
			break
		}
	}

	workoutIDs := make(map[string]string)
	for _, week := range p.Weeks {
		for i := range week.Workouts {
			w := &week.Workouts[i]
			path := fmt.Sprintf("week %d / workout %d", week.WeekNumber, i)
			if w.ID == "" {
				v.add(path, "workout id is required")
			} else if other, seen := workoutIDs[w.ID]; seen {
				v.add(path, "workout id %s already used at %s", w.ID, other)
			} else {
				workoutIDs[w.ID] = path
			}
			v = append(v, workoutViolations(path, w, countExact)...)
		}
	}
	return v
}

func validateWorkout(w *Workout, check countCheck) error {
	return workoutViolations("workout "+w.ID, w, check).Err()
}

func validateStation(s *Station) error {
	return stationViolations("station "+s.ID, s).Err()
}

func validateSet(s *Set) error {
	return setViolations("set "+s.ID, s).Err()
}

func workoutViolations(path string, w *Workout, check countCheck) Violations {
	var v Violations
	if strings.TrimSpace(w.Name) == "" {
		v.add(path, "workout name is required")
	}
	if strings.TrimSpace(w.Image) == "" {
		v.add(path, "workout image is required")
	}
	if w.NumberOfStations < 0 {
		v.add(path, "numberOfStations cannot be negative")
	}

	switch check {
	case countExact:
		if len(w.Stations) != w.NumberOfStations {
			v.add(path, "declares %d stations but has %d", w.NumberOfStations, len(w.Stations))
		}
	case countAtMost:
		if len(w.Stations) > w.NumberOfStations {
			v.add(path, "declares %d stations but has %d", w.NumberOfStations, len(w.Stations))
		}
	}

	ids := make(map[string]struct{}, len(w.Stations))
	for i := range w.Stations {
		s := &w.Stations[i]
		stationPath := fmt.Sprintf("%s / station %d", path, i+1)
		if s.ID != "" {
			if _, dup := ids[s.ID]; dup {
				v.add(stationPath, "duplicate station id %s", s.ID)
			}
			ids[s.ID] = struct{}{}
		}
		v = append(v, stationViolations(stationPath, s)...)
	}
	return v
}

func stationViolations(path string, s *Station) Violations {
	var v Violations
	if strings.TrimSpace(s.ExerciseName) == "" {
		v.add(path, "exercise name is required")
	}
	if len(s.Sets) == 0 {
		v.add(path, "at least one set is required")
	}
	ids := make(map[string]struct{}, len(s.Sets))
	for i := range s.Sets {
		set := &s.Sets[i]
		setPath := fmt.Sprintf("%s / set %d", path, i)
		if set.ID != "" {
			if _, dup := ids[set.ID]; dup {
				v.add(setPath, "duplicate set id %s", set.ID)
			}
			ids[set.ID] = struct{}{}
		}
		v = append(v, setViolations(setPath, set)...)
	}
	return v
}

func setViolations(path string, s *Set) Violations {
	var v Violations
	if s.Previous < 0 {
		v.add(path, "previous cannot be negative")
	}
	if s.Lbs < 0 {
		v.add(path, "lbs cannot be negative")
	}
	if s.Reps < 0 {
		v.add(path, "reps cannot be negative")
	}
	return v
}
