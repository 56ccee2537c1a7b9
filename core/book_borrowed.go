package core

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a book was borrowed.
type BookBorrowed struct {
	BookID     string
	OccurredAt time.Time
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(bookID BookID, occurredAt time.Time) BookBorrowed {
	return BookBorrowed{
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookBorrowed) EventType() string {
	return BookBorrowedEventType
}

// AffectedBookID returns the id of the borrowed book.
func (e BookBorrowed) AffectedBookID() string {
	return e.BookID
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
