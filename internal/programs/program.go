package programs

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWeeksCount is the number of weeks provisioned for a new program.
const DefaultWeeksCount = 4

// newID is swapped in tests for deterministic identifiers.
var newID = uuid.NewString

type Set struct {
	ID       string  `json:"id"`
	Previous float64 `json:"previous"`
	Lbs      float64 `json:"lbs"`
	Reps     int     `json:"reps"`
}

type Station struct {
	ID           string `json:"id"`
	ExerciseName string `json:"exerciseName"`
	Sets         []Set  `json:"sets"`
}

type Workout struct {
	ID               string     `json:"id"`
	Image            string     `json:"image"`
	Name             string     `json:"name"`
	NumberOfStations int        `json:"numberOfStations"`
	Date             *time.Time `json:"date,omitempty"`
	Stations         []Station  `json:"stations"`
}

type Week struct {
	WeekNumber int       `json:"weekNumber"`
	Workouts   []Workout `json:"workouts"`
}

type Program struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Active    bool      `json:"active"`
	Weeks     []Week    `json:"weeks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProgram provisions a program with DefaultWeeksCount empty weeks.
func NewProgram(title string, startDate, endDate time.Time) *Program {
	p := &Program{
		ID:        newID(),
		Title:     title,
		StartDate: startDate.UTC(),
		EndDate:   endDate.UTC(),
		Weeks:     make([]Week, 0, DefaultWeeksCount),
	}
	for i := 1; i <= DefaultWeeksCount; i++ {
		p.Weeks = append(p.Weeks, Week{WeekNumber: i, Workouts: []Workout{}})
	}
	return p
}

// AppendWeek adds an empty week after the highest week number and returns its number.
func (p *Program) AppendWeek() int {
	next := 1
	for _, w := range p.Weeks {
		if w.WeekNumber >= next {
			next = w.WeekNumber + 1
		}
	}
	p.Weeks = append(p.Weeks, Week{WeekNumber: next, Workouts: []Workout{}})
	return next
}

func (p *Program) Clone() *Program {
	if p == nil {
		return nil
	}
	c := *p
	c.Weeks = make([]Week, len(p.Weeks))
	for i, w := range p.Weeks {
		c.Weeks[i] = w.clone()
	}
	return &c
}

func (w Week) clone() Week {
	c := w
	c.Workouts = make([]Workout, len(w.Workouts))
	for i, wo := range w.Workouts {
		c.Workouts[i] = wo.Clone()
	}
	return c
}

func (w Workout) Clone() Workout {
	c := w
	if w.Date != nil {
		d := *w.Date
		c.Date = &d
	}
	c.Stations = CloneStations(w.Stations)
	return c
}

func (s Station) Clone() Station {
	c := s
	c.Sets = make([]Set, len(s.Sets))
	copy(c.Sets, s.Sets)
	return c
}

// CloneStations deep-copies a station list, used for completion snapshots.
func CloneStations(stations []Station) []Station {
	if stations == nil {
		return []Station{}
	}
	c := make([]Station, len(stations))
	for i, s := range stations {
		c[i] = s.Clone()
	}
	return c
}
