package netdiag

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock; the peak-hour rule is local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
