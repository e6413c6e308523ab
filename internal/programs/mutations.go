package programs

import (
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
)

// DeletePolicy decides how station and set deletions treat the count and
// non-empty invariants.
type DeletePolicy string

const (
	// DeleteStrict decrements numberOfStations with a station delete and refuses to
	// remove the last set of a station.
	DeleteStrict DeletePolicy = "strict"
	// DeleteLegacy only splices; Validate reports what is left broken. This is
	// the default.
	DeleteLegacy DeletePolicy = "legacy"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeleteLegacy, "":
		return DeleteLegacy, nil
	case DeleteStrict:
		return DeleteStrict, nil
	default:
		return "", fmt.Errorf("unknown delete policy: %s", s)
	}
}

type WorkoutUpdate struct {
	Name             *string    `json:"name,omitempty"`
	Image            *string    `json:"image,omitempty"`
	NumberOfStations *int       `json:"numberOfStations,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	// Stations replaces the whole station list when not nil.
	Stations []Station `json:"stations,omitempty"`
}

type StationUpdate struct {
	ExerciseName *string `json:"exerciseName,omitempty"`
	// Sets replaces the whole set list when not nil.
	Sets []Set `json:"sets,omitempty"`
}

type SetUpdate struct {
	Previous *float64 `json:"previous,omitempty"`
	Lbs      *float64 `json:"lbs,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
}

func (p *Program) locateWorkout(path WorkoutPath) (*Week, int, error) {
	week, err := p.week(path.WeekNumber)
	if err != nil {
		return nil, -1, err
	}
	if path.Workout.IsZero() {
		return nil, -1, apperr.Validation("workout reference is required")
	}
	idx, ok := locate(path.Workout, len(week.Workouts), func(i int) string {
		return week.Workouts[i].ID
	})
	if !ok {
		return nil, -1, apperr.NotFound("workout not found: %s", path)
	}
	return week, idx, nil
}

func (p *Program) locateStation(path StationPath) (*Workout, int, error) {
	week, wi, err := p.locateWorkout(path.WorkoutPath)
	if err != nil {
		return nil, -1, err
	}
	workout := &week.Workouts[wi]
	if path.Station.IsZero() {
		return nil, -1, apperr.Validation("station reference is required")
	}
	idx, ok := locate(path.Station, len(workout.Stations), func(i int) string {
		return workout.Stations[i].ID
	})
	if !ok {
		return nil, -1, apperr.NotFound("station not found: %s", path)
	}
	return workout, idx, nil
}

func (p *Program) locateSet(path SetPath) (*Station, int, error) {
	workout, si, err := p.locateStation(path.StationPath)
	if err != nil {
		return nil, -1, err
	}
	station := &workout.Stations[si]
	if path.Set.IsZero() {
		return nil, -1, apperr.Validation("set reference is required")
	}
	idx, ok := locate(path.Set, len(station.Sets), func(i int) string {
		return station.Sets[i].ID
	})
	if !ok {
		return nil, -1, apperr.NotFound("set not found: %s", path)
	}
	return station, idx, nil
}

func (p *Program) hasWorkoutID(id string) bool {
	for _, week := range p.Weeks {
		for _, w := range week.Workouts {
			if w.ID == id {
				return true
			}
		}
	}
	return false
}

// AddWorkout appends a fully formed workout to a week. Missing ids are generated.
func (p *Program) AddWorkout(weekNumber int, w Workout) (Workout, error) {
	week, err := p.week(weekNumber)
	if err != nil {
		return Workout{}, err
	}

	w = w.Clone()
	if w.ID == "" {
		w.ID = newID()
	} else if p.hasWorkoutID(w.ID) {
		return Workout{}, apperr.Validation("workout id %s already exists", w.ID)
	}
	assignStationIDs(w.Stations)

	if err := validateWorkout(&w, countExact); err != nil {
		return Workout{}, err
	}

	week.Workouts = append(week.Workouts, w)
	return w.Clone(), nil
}

// UpdateWorkout applies the non-nil fields of upd. The result is validated as a whole
// before anything is written back.
func (p *Program) UpdateWorkout(path WorkoutPath, upd WorkoutUpdate) (Workout, error) {
	week, idx, err := p.locateWorkout(path)
	if err != nil {
		return Workout{}, err
	}

	w := week.Workouts[idx].Clone()
	if upd.Name != nil {
		w.Name = *upd.Name
	}
	if upd.Image != nil {
		w.Image = *upd.Image
	}
	if upd.NumberOfStations != nil {
		w.NumberOfStations = *upd.NumberOfStations
	}
	if upd.Date != nil {
		d := upd.Date.UTC()
		w.Date = &d
	}
	if upd.Stations != nil {
		if len(upd.Stations) != w.NumberOfStations {
			return Workout{}, apperr.Validation(
				"workout %s declares %d stations but %d were submitted",
				w.ID, w.NumberOfStations, len(upd.Stations),
			)
		}
		w.Stations = CloneStations(upd.Stations)
		assignStationIDs(w.Stations)
	}

	if err := validateWorkout(&w, countExact); err != nil {
		return Workout{}, err
	}

	week.Workouts[idx] = w
	return w.Clone(), nil
}

func (p *Program) DeleteWorkout(path WorkoutPath) error {
	week, idx, err := p.locateWorkout(path)
	if err != nil {
		return err
	}
	week.Workouts = append(week.Workouts[:idx], week.Workouts[idx+1:]...)
	return nil
}

// AddStation appends a station. Unless growCount is set, the workout must have
// fewer stations than it declares.
func (p *Program) AddStation(path WorkoutPath, st Station, growCount bool) (Station, error) {
	week, idx, err := p.locateWorkout(path)
	if err != nil {
		return Station{}, err
	}

	w := week.Workouts[idx].Clone()
	if growCount {
		w.NumberOfStations++
	} else if len(w.Stations) >= w.NumberOfStations {
		return Station{}, apperr.Validation(
			"workout %s already has %d of %d stations, grow numberOfStations to add another",
			w.ID, len(w.Stations), w.NumberOfStations,
		)
	}

	st = st.Clone()
	if st.ID == "" {
		st.ID = newID()
	}
	assignSetIDs(st.Sets)
	w.Stations = append(w.Stations, st)

	if err := validateWorkout(&w, countAtMost); err != nil {
		return Station{}, err
	}

	week.Workouts[idx] = w
	return st.Clone(), nil
}

func (p *Program) UpdateStation(path StationPath, upd StationUpdate) (Station, error) {
	workout, idx, err := p.locateStation(path)
	if err != nil {
		return Station{}, err
	}

	st := workout.Stations[idx].Clone()
	if upd.ExerciseName != nil {
		st.ExerciseName = *upd.ExerciseName
	}
	if upd.Sets != nil {
		st.Sets = make([]Set, len(upd.Sets))
		copy(st.Sets, upd.Sets)
		assignSetIDs(st.Sets)
	}

	if err := validateStation(&st); err != nil {
		return Station{}, err
	}

	workout.Stations[idx] = st
	return st.Clone(), nil
}

func (p *Program) DeleteStation(path StationPath, policy DeletePolicy) error {
	workout, idx, err := p.locateStation(path)
	if err != nil {
		return err
	}
	workout.Stations = append(workout.Stations[:idx], workout.Stations[idx+1:]...)
	if policy != DeleteLegacy && workout.NumberOfStations > 0 {
		workout.NumberOfStations--
	}
	return nil
}

func (p *Program) AddSet(path StationPath, s Set) (Set, error) {
	workout, idx, err := p.locateStation(path)
	if err != nil {
		return Set{}, err
	}
	if s.ID == "" {
		s.ID = newID()
	}
	if err := validateSet(&s); err != nil {
		return Set{}, err
	}

	station := &workout.Stations[idx]
	for _, existing := range station.Sets {
		if existing.ID == s.ID {
			return Set{}, apperr.Validation("set id %s already exists in station %s", s.ID, station.ID)
		}
	}
	station.Sets = append(station.Sets, s)
	return s, nil
}

func (p *Program) UpdateSet(path SetPath, upd SetUpdate) (Set, error) {
	station, idx, err := p.locateSet(path)
	if err != nil {
		return Set{}, err
	}

	s := station.Sets[idx]
	if upd.Previous != nil {
		s.Previous = *upd.Previous
	}
	if upd.Lbs != nil {
		s.Lbs = *upd.Lbs
	}
	if upd.Reps != nil {
		s.Reps = *upd.Reps
	}
	if err := validateSet(&s); err != nil {
		return Set{}, err
	}

	station.Sets[idx] = s
	return s, nil
}

func (p *Program) DeleteSet(path SetPath, policy DeletePolicy) error {
	station, idx, err := p.locateSet(path)
	if err != nil {
		return err
	}
	if policy != DeleteLegacy && len(station.Sets) == 1 {
		return apperr.Validation("station %s must keep at least one set", station.ID)
	}
	station.Sets = append(station.Sets[:idx], station.Sets[idx+1:]...)
	return nil
}

func assignStationIDs(stations []Station) {
	for i := range stations {
		if stations[i].ID == "" {
			stations[i].ID = newID()
		}
		assignSetIDs(stations[i].Sets)
	}
}

func assignSetIDs(sets []Set) {
	for i := range sets {
		if sets[i].ID == "" {
			sets[i].ID = newID()
		}
	}
}
