package core

import (
	"regexp"
	"strings"
)

// validIsbn13Pattern matches 13 digit ISBNs with an optional hyphen
// after the first 3 digits (the EAN prefix).
var validIsbn13Pattern = regexp.MustCompile(`^\d{3}-?\d{10}$`)

// Isbn13 is a validated 13 digit book identification number.
type Isbn13 struct {
	value string
}

// ParseIsbn13 validates the given string and returns it as an Isbn13.
// Returns a MalformedValueError if the string does not match the
// ISBN-13 pattern.
func ParseIsbn13(raw string) (Isbn13, error) {
	if !validIsbn13Pattern.MatchString(raw) {
		return Isbn13{}, NewMalformedValueError(
			"the isbn has an invalid format",
			"isbn: must match pattern "+validIsbn13Pattern.String(),
		)
	}

	// The hyphenated and the plain form identify the same book.
	return Isbn13{value: strings.ReplaceAll(raw, "-", "")}, nil
}

// String returns the plain 13 digit representation without hyphens.
func (isbn Isbn13) String() string {
	return isbn.value
}
