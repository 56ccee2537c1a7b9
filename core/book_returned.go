package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a borrowed book was returned.
type BookReturned struct {
	BookID     string
	OccurredAt time.Time
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(bookID BookID, occurredAt time.Time) BookReturned {
	return BookReturned{
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookReturned) EventType() string {
	return BookReturnedEventType
}

// AffectedBookID returns the id of the returned book.
func (e BookReturned) AffectedBookID() string {
	return e.BookID
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
