package core

// Book is the immutable data of a book: its ISBN, title, authors in
// insertion order (may be empty) and an optional positive number of pages.
type Book struct {
	Isbn          Isbn13
	Title         Title
	Authors       []Author
	NumberOfPages *int
}

// NewBook creates a Book from already validated value types.
// Returns a MalformedValueError if numberOfPages is set but not positive.
func NewBook(isbn Isbn13, title Title, authors []Author, numberOfPages *int) (Book, error) {
	if numberOfPages != nil && *numberOfPages <= 0 {
		return Book{}, NewMalformedValueError(
			"the number of pages has an invalid value",
			"numberOfPages: must be positive",
		)
	}

	return Book{
		Isbn:          isbn,
		Title:         title,
		Authors:       authors,
		NumberOfPages: numberOfPages,
	}, nil
}
