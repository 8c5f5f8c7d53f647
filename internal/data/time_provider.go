package data

import "time"

// TimeProvider abstracts the clock so repositories can be tested with fixed timestamps.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the actual current time.
type RealTimeProvider struct{}

// Now returns the current time.
func (*RealTimeProvider) Now() time.Time { return time.Now() }
