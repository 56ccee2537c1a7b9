package core

import (
	"regexp"
)

// validTitlePattern restricts titles to letters, digits and a set of
// common special characters.
var validTitlePattern = regexp.MustCompile(`^[\p{L}\p{N} _"'&@!?#.,:;()\[\]{}<>|+=*%$/\\~-]+$`)

// Title is the title of a book.
type Title struct {
	value string
}

// NewTitle validates the given string and returns it as a Title.
// Returns a MalformedValueError if the string is empty or contains
// characters outside the allowed character class.
func NewTitle(raw string) (Title, error) {
	if !validTitlePattern.MatchString(raw) {
		return Title{}, NewMalformedValueError(
			"the title has an invalid format",
			"title: must not be blank and must match pattern "+validTitlePattern.String(),
		)
	}

	return Title{value: raw}, nil
}

// String returns the title as a plain string.
func (t Title) String() string {
	return t.value
}
