package api

// CreateBookRequest is the payload for creating a book.
// Authors and number of pages are set through separate endpoints.
type CreateBookRequest struct {
	Isbn  string `json:"isbn"`
	Title string `json:"title"`
}

// UpdateTitleRequest is the payload for replacing a book's title.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// UpdateAuthorsRequest is the payload for replacing a book's authors.
// The list must not be empty - removing all authors is done via DELETE.
type UpdateAuthorsRequest struct {
	Authors []string `json:"authors"`
}

// UpdateNumberOfPagesRequest is the payload for setting a book's page count.
type UpdateNumberOfPagesRequest struct {
	NumberOfPages int `json:"numberOfPages"`
}

// BorrowBookRequest is the payload for borrowing a book.
type BorrowBookRequest struct {
	Borrower string `json:"borrower"`
}
