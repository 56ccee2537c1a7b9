package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookNotFound indicates that no book exists for the requested BookID.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookAlreadyBorrowed indicates a borrow attempt on a book that is
	// already in the Borrowed state.
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")

	// ErrBookAlreadyReturned indicates a return attempt on a book that is
	// already in the Available state.
	ErrBookAlreadyReturned = errors.New("book was already returned")
)

// BookNotFound builds an ErrBookNotFound error for the given BookID.
func BookNotFound(id BookID) error {
	return fmt.Errorf("%w: the book with id %s does not exist", ErrBookNotFound, id)
}

// MalformedValueError indicates that an input value did not pass validation.
// It carries a human-readable message and optional field-level details.
type MalformedValueError struct {
	Message string
	Details []string
}

// NewMalformedValueError creates a MalformedValueError with the given
// message and field-level details.
func NewMalformedValueError(message string, details ...string) *MalformedValueError {
	return &MalformedValueError{
		Message: message,
		Details: details,
	}
}

// Error implements the error interface.
func (e *MalformedValueError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	return e.Message + ": " + strings.Join(e.Details, "; ")
}
