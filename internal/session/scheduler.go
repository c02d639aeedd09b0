package session

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
