// Package clock abstracts wall time so record timestamps can be pinned in tests.
package clock

import "time"

// Clock returns the current time in UTC.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }
