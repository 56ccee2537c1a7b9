package core

import (
	"regexp"
)

// validBorrowerPattern matches names made of word characters,
// spaces and hyphens, starting with a word character.
var validBorrowerPattern = regexp.MustCompile(`^[\p{L}\p{N}_][\p{L}\p{N}_ -]*$`)

// Borrower is the person who borrowed a book.
type Borrower struct {
	value string
}

// NewBorrower validates the given string and returns it as a Borrower.
// Returns a MalformedValueError if the string does not look like a name.
func NewBorrower(raw string) (Borrower, error) {
	if !validBorrowerPattern.MatchString(raw) {
		return Borrower{}, NewMalformedValueError(
			"the borrower has an invalid format",
			"borrower: must match pattern "+validBorrowerPattern.String(),
		)
	}

	return Borrower{value: raw}, nil
}

// String returns the borrower's name as a plain string.
func (b Borrower) String() string {
	return b.value
}
