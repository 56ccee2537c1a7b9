package testutil

import (
	"github.com/NovatecConsulting/library-service-go/core"
)

// BookCleanCode returns the "Clean Code" fixture with authors and pages set.
func BookCleanCode() core.Book {
	pages := 464

	return MustBook("9780132350884", "Clean Code", []string{"Robert C. Martin"}, &pages)
}

// BookTheMartian returns the "The Martian" fixture with empty authors and
// no page count, as created through the minimal create request.
func BookTheMartian() core.Book {
	return MustBook("9780091956141", "The Martian", nil, nil)
}

// MustBook builds a Book from raw values and panics on validation errors,
// which is fine for test code.
func MustBook(isbn string, title string, authors []string, numberOfPages *int) core.Book {
	parsedIsbn, err := core.ParseIsbn13(isbn)
	if err != nil {
		panic(err)
	}

	parsedTitle, err := core.NewTitle(title)
	if err != nil {
		panic(err)
	}

	parsedAuthors := make([]core.Author, 0, len(authors))
	for _, raw := range authors {
		author, authorErr := core.NewAuthor(raw)
		if authorErr != nil {
			panic(authorErr)
		}

		parsedAuthors = append(parsedAuthors, author)
	}

	book, err := core.NewBook(parsedIsbn, parsedTitle, parsedAuthors, numberOfPages)
	if err != nil {
		panic(err)
	}

	return book
}

// MustBorrower builds a Borrower from a raw string and panics on validation
// errors, which is fine for test code.
func MustBorrower(name string) core.Borrower {
	borrower, err := core.NewBorrower(name)
	if err != nil {
		panic(err)
	}

	return borrower
}
