package postgresengine

import (
	"errors"
	"fmt"
	"time"

	"github.com/NovatecConsulting/library-service-go/core"
)

// bookDocument is the row representation of a BookRecord.
// It is built on scalars so the mapping to and from SQL stays trivial.
type bookDocument struct {
	ID            string
	Isbn          string
	Title         string
	Authors       []string
	NumberOfPages *int
	Borrowed      *borrowedState
}

// borrowedState is the jsonb representation of the Borrowed book state.
type borrowedState struct {
	By string `json:"by"`
	On string `json:"on"`
}

// documentFromRecord maps a BookRecord to its row representation.
func documentFromRecord(record core.BookRecord) bookDocument {
	doc := bookDocument{
		ID:            record.ID.String(),
		Isbn:          record.Book.Isbn.String(),
		Title:         record.Book.Title.String(),
		Authors:       make([]string, 0, len(record.Book.Authors)),
		NumberOfPages: record.Book.NumberOfPages,
	}

	for _, author := range record.Book.Authors {
		doc.Authors = append(doc.Authors, author.String())
	}

	if borrowed, isBorrowed := record.State.(core.Borrowed); isBorrowed {
		doc.Borrowed = &borrowedState{
			By: borrowed.By.String(),
			On: borrowed.On.Format(time.RFC3339Nano),
		}
	}

	return doc
}

// recordFromDocument maps a row representation back to a BookRecord,
// re-validating all value types on the way.
func recordFromDocument(doc bookDocument) (core.BookRecord, error) {
	id, err := core.ParseBookID(doc.ID)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, err)
	}

	isbn, err := core.ParseIsbn13(doc.Isbn)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, err)
	}

	title, err := core.NewTitle(doc.Title)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, err)
	}

	authors := make([]core.Author, 0, len(doc.Authors))
	for _, raw := range doc.Authors {
		author, authorErr := core.NewAuthor(raw)
		if authorErr != nil {
			return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, authorErr)
		}

		authors = append(authors, author)
	}

	book, err := core.NewBook(isbn, title, authors, doc.NumberOfPages)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, err)
	}

	record := core.NewBookRecord(id, book)

	if doc.Borrowed != nil {
		by, byErr := core.NewBorrower(doc.Borrowed.By)
		if byErr != nil {
			return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, byErr)
		}

		on, onErr := time.Parse(time.RFC3339Nano, doc.Borrowed.On)
		if onErr != nil {
			return core.BookRecord{}, errors.Join(
				ErrMappingBookDocumentFailed,
				fmt.Errorf("invalid borrowed timestamp %q: %w", doc.Borrowed.On, onErr),
			)
		}

		record.State = core.Borrowed{By: by, On: core.ToOccurredAt(on)}
	}

	return record, nil
}
