package adapter

import "time"

// SystemClock implements port.Clock with the wall clock in UTC.
type SystemClock struct{}

// NewSystemClock creates a system clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
