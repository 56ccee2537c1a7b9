package core

import (
	"strings"
)

// Author is the author of a book.
type Author struct {
	value string
}

// NewAuthor returns the given string as an Author.
// Returns a MalformedValueError if the string is blank.
func NewAuthor(raw string) (Author, error) {
	if strings.TrimSpace(raw) == "" {
		return Author{}, NewMalformedValueError(
			"the author has an invalid format",
			"author: must not be blank",
		)
	}

	return Author{value: raw}, nil
}

// String returns the author as a plain string.
func (a Author) String() string {
	return a.value
}
