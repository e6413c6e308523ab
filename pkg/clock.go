package pkg

import "time"

// Clock is the source of "now" for everything that depends on the calendar
// (today's workout, ISO weeks, session age).
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant; used by tests and one-shot tools.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
