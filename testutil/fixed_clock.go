package testutil

import (
	"time"
)

// FixedClock is a Clock that always returns the same instant.
type FixedClock struct {
	Time time.Time
}

// ClockFixedAt creates a FixedClock from an RFC 3339 timestamp string.
// It panics on invalid input, which is fine for test code.
func ClockFixedAt(rfc3339 string) FixedClock {
	t, err := time.Parse(time.RFC3339Nano, rfc3339)
	if err != nil {
		panic(err)
	}

	return FixedClock{Time: t}
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
