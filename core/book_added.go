package core

import (
	"time"
)

// BookAddedEventType is the event type identifier.
const BookAddedEventType = "BookAdded"

// BookAdded represents when a book was added to the collection.
type BookAdded struct {
	BookID     string
	OccurredAt time.Time
}

// BuildBookAdded creates a new BookAdded event.
func BuildBookAdded(bookID BookID, occurredAt time.Time) BookAdded {
	return BookAdded{
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAdded) EventType() string {
	return BookAddedEventType
}

// AffectedBookID returns the id of the added book.
func (e BookAdded) AffectedBookID() string {
	return e.BookID
}

// HasOccurredAt returns when this event occurred.
func (e BookAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
