package core

import (
	"fmt"
	"time"
)

// BookRecord is the aggregate root of the library domain. It combines an
// immutable BookID with the book's data and its current lifecycle state.
//
// A BookRecord is a value - the transition methods return a new record and
// leave the receiver untouched.
type BookRecord struct {
	ID    BookID
	Book  Book
	State BookState
}

// NewBookRecord creates a BookRecord for the given id and book data,
// in the initial Available state.
func NewBookRecord(id BookID, book Book) BookRecord {
	return BookRecord{
		ID:    id,
		Book:  book,
		State: Available{},
	}
}

// Borrow transitions the record from Available to Borrowed.
// Returns ErrBookAlreadyBorrowed if the book is currently borrowed.
func (r BookRecord) Borrow(by Borrower, on time.Time) (BookRecord, error) {
	if _, isBorrowed := r.State.(Borrowed); isBorrowed {
		return BookRecord{}, fmt.Errorf("%w: the book with id %s is already borrowed", ErrBookAlreadyBorrowed, r.ID)
	}

	r.State = Borrowed{By: by, On: ToOccurredAt(on)}

	return r, nil
}

// Return transitions the record from Borrowed back to Available,
// discarding the borrower data.
// Returns ErrBookAlreadyReturned if the book is not currently borrowed.
func (r BookRecord) Return() (BookRecord, error) {
	if _, isBorrowed := r.State.(Borrowed); !isBorrowed {
		return BookRecord{}, fmt.Errorf("%w: the book with id %s was already returned", ErrBookAlreadyReturned, r.ID)
	}

	r.State = Available{}

	return r, nil
}

// ChangeTitle returns a copy of the record with the given title.
func (r BookRecord) ChangeTitle(title Title) BookRecord {
	r.Book.Title = title
	return r
}

// ChangeAuthors returns a copy of the record with the given authors.
func (r BookRecord) ChangeAuthors(authors []Author) BookRecord {
	r.Book.Authors = authors
	return r
}

// ChangeNumberOfPages returns a copy of the record with the given number
// of pages. A nil value removes the page count.
func (r BookRecord) ChangeNumberOfPages(numberOfPages *int) BookRecord {
	r.Book.NumberOfPages = numberOfPages
	return r
}
