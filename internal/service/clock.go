package service

import "time"

// SystemClock reads the wall clock. Tests substitute a fixed clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
