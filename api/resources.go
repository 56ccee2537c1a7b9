package api

import (
	"time"

	"github.com/NovatecConsulting/library-service-go/core"
)

// BookResource is the response representation of a BookRecord.
type BookResource struct {
	ID            string            `json:"id"`
	Isbn          string            `json:"isbn"`
	Title         string            `json:"title"`
	Authors       []string          `json:"authors"`
	NumberOfPages *int              `json:"numberOfPages,omitempty"`
	Borrowed      *BorrowedResource `json:"borrowed,omitempty"`
}

// BorrowedResource describes who borrowed a book and when.
// It is only present while the book is in the Borrowed state.
type BorrowedResource struct {
	By string `json:"by"`
	On string `json:"on"`
}

// toResource maps a BookRecord to its response representation.
func toResource(record core.BookRecord) BookResource {
	authors := make([]string, 0, len(record.Book.Authors))
	for _, author := range record.Book.Authors {
		authors = append(authors, author.String())
	}

	resource := BookResource{
		ID:            record.ID.String(),
		Isbn:          record.Book.Isbn.String(),
		Title:         record.Book.Title.String(),
		Authors:       authors,
		NumberOfPages: record.Book.NumberOfPages,
	}

	if borrowed, isBorrowed := record.State.(core.Borrowed); isBorrowed {
		resource.Borrowed = &BorrowedResource{
			By: borrowed.By.String(),
			On: borrowed.On.UTC().Format(time.RFC3339Nano),
		}
	}

	return resource
}

// toResources maps a slice of BookRecords to response representations.
func toResources(records []core.BookRecord) []BookResource {
	resources := make([]BookResource, 0, len(records))
	for _, record := range records {
		resources = append(resources, toResource(record))
	}

	return resources
}
