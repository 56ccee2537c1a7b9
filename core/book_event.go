package core

import (
	"time"
)

// BookEvents is a slice of BookEvent instances.
type BookEvents = []BookEvent

// BookEvent represents a fact notification about a book's lifecycle:
// it was added, removed, borrowed or returned.
type BookEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// AffectedBookID returns the string representation of the BookID
	// the event refers to.
	AffectedBookID() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}
