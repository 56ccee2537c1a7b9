package core

import (
	"time"
)

// BookRemovedEventType is the event type identifier.
const BookRemovedEventType = "BookRemoved"

// BookRemoved represents when a book was removed from the collection.
type BookRemoved struct {
	BookID     string
	OccurredAt time.Time
}

// BuildBookRemoved creates a new BookRemoved event.
func BuildBookRemoved(bookID BookID, occurredAt time.Time) BookRemoved {
	return BookRemoved{
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookRemoved) EventType() string {
	return BookRemovedEventType
}

// AffectedBookID returns the id of the removed book.
func (e BookRemoved) AffectedBookID() string {
	return e.BookID
}

// HasOccurredAt returns when this event occurred.
func (e BookRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
