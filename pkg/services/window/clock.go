package window

import "time"

// Clock is the source of "now" for every current-period report.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the process wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always returns t. Useful for replaying a report as of a given moment.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
