package programs

import (
	"fmt"
	"strconv"
)

// Ref addresses a node inside its parent list, by stable id first and by
// 0-based position only when no id is given.
type Ref struct {
	ID    string `json:"id,omitempty"`
	Index *int   `json:"index,omitempty"`
}

func ByID(id string) Ref {
	return Ref{ID: id}
}

func ByIndex(i int) Ref {
	return Ref{Index: &i}
}

// ParseRef reads a path segment as an id. Integer segments also carry a
// position, used only when no node has that id.
func ParseRef(segment string) Ref {
	r := ByID(segment)
	if i, err := strconv.Atoi(segment); err == nil {
		r.Index = &i
	}
	return r
}

func (r Ref) IsZero() bool {
	return r.ID == "" && r.Index == nil
}

func (r Ref) String() string {
	switch {
	case r.ID != "":
		return r.ID
	case r.Index != nil:
		return fmt.Sprintf("#%d", *r.Index)
	default:
		return "<none>"
	}
}

type WorkoutPath struct {
	WeekNumber int
	Workout    Ref
}

type StationPath struct {
	WorkoutPath
	Station Ref
}

type SetPath struct {
	StationPath
	Set Ref
}

func (p WorkoutPath) String() string {
	return fmt.Sprintf("week %d / workout %s", p.WeekNumber, p.Workout)
}

func (p StationPath) String() string {
	return fmt.Sprintf("%s / station %s", p.WorkoutPath, p.Station)
}

func (p SetPath) String() string {
	return fmt.Sprintf("%s / set %s", p.StationPath, p.Set)
}

// locate returns the position matched by ref among n elements whose ids are
// given by idAt. An id match wins over the index.
func locate(ref Ref, n int, idAt func(int) string) (int, bool) {
	if ref.ID != "" {
		for i := 0; i < n; i++ {
			if idAt(i) == ref.ID {
				return i, true
			}
		}
	}
	if ref.Index != nil && *ref.Index >= 0 && *ref.Index < n {
		return *ref.Index, true
	}
	return -1, false
}
