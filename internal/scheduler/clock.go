package scheduler

import "time"

// Clock separates the scheduler from the host clock so day and minute
// boundaries can be driven precisely in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
