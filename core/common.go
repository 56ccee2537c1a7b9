package core

import (
	"time"
)

// ToOccurredAt normalizes a timestamp to UTC with microsecond precision,
// matching what the storage layer can faithfully round-trip.
func ToOccurredAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
