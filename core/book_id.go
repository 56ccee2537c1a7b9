package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidBookID is returned when a string cannot be parsed into a BookID.
var ErrInvalidBookID = errors.New("invalid book id")

// BookID uniquely identifies a BookRecord. It is generated once when a book
// is added to the collection and never reused.
type BookID struct {
	value uuid.UUID
}

// NewBookID generates a new random BookID.
func NewBookID() BookID {
	return BookID{value: uuid.New()}
}

// ParseBookID parses the string representation of a BookID.
// Returns ErrInvalidBookID if the input is not a valid UUID.
func ParseBookID(raw string) (BookID, error) {
	value, err := uuid.Parse(raw)
	if err != nil {
		return BookID{}, fmt.Errorf("%w: %q", ErrInvalidBookID, raw)
	}

	return BookID{value: value}, nil
}

// String returns the canonical string representation of the BookID.
func (id BookID) String() string {
	return id.value.String()
}

// IsZero reports whether the BookID is the zero value.
func (id BookID) IsZero() bool {
	return id.value == uuid.Nil
}
