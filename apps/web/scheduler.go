package web

import "time"

type (
	Timer interface {
		Stop() bool
	}

	// Scheduler runs delayed page work.
	Scheduler interface {
		AfterFunc(d time.Duration, f func()) Timer
	}
)

type realScheduler struct{}

// RealScheduler runs f on its own goroutine once d elapsed.
func RealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
