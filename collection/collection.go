package collection

import (
	"context"

	"github.com/NovatecConsulting/library-service-go/core"
)

// UpdateAction is a pure transformation applied to the current record value
// by UpdateBook. Field-level validation happens before the action is built,
// so the action itself cannot fail.
type UpdateAction func(record core.BookRecord) core.BookRecord

// BookCollection represents the book collection of this library instance.
//
// It offers the common actions taken with a collection of books: adding,
// finding, updating and deleting books as well as borrowing and returning
// them. Every successful mutating operation dispatches exactly one matching
// domain event, timestamped with the injected clock; a failing operation
// dispatches none.
type BookCollection struct {
	clock           Clock
	dataStore       BookDataStore
	idGenerator     *BookIDGenerator
	eventDispatcher EventDispatcher
}

// NewBookCollection creates a BookCollection with the given collaborators.
func NewBookCollection(
	clock Clock,
	dataStore BookDataStore,
	idGenerator *BookIDGenerator,
	eventDispatcher EventDispatcher,
) *BookCollection {

	return &BookCollection{
		clock:           clock,
		dataStore:       dataStore,
		idGenerator:     idGenerator,
		eventDispatcher: eventDispatcher,
	}
}

// AddBook adds the given book to the collection under a freshly generated
// BookID, in the initial Available state, and returns the persisted record.
// Dispatches a BookAdded event on success.
func (c *BookCollection) AddBook(ctx context.Context, book core.Book) (core.BookRecord, error) {
	id, err := c.idGenerator.Generate(ctx)
	if err != nil {
		return core.BookRecord{}, err
	}

	record, err := c.dataStore.CreateOrUpdate(ctx, core.NewBookRecord(id, book))
	if err != nil {
		return core.BookRecord{}, err
	}

	c.eventDispatcher.Dispatch(ctx, core.BuildBookAdded(record.ID, c.clock.Now()))

	return record, nil
}

// GetBook returns the record for the given BookID.
// Returns an ErrBookNotFound error if no such record exists.
func (c *BookCollection) GetBook(ctx context.Context, id core.BookID) (core.BookRecord, error) {
	record, err := c.dataStore.FindByID(ctx, id)
	if err != nil {
		return core.BookRecord{}, err
	}

	if record == nil {
		return core.BookRecord{}, core.BookNotFound(id)
	}

	return *record, nil
}

// GetAllBooks returns all records of the collection in store-defined order.
func (c *BookCollection) GetAllBooks(ctx context.Context) ([]core.BookRecord, error) {
	return c.dataStore.FindAll(ctx)
}

// UpdateBook fetches the record for the given BookID, applies the given
// pure transformation to it, persists the result and returns the persisted
// value. Returns an ErrBookNotFound error if no such record exists.
func (c *BookCollection) UpdateBook(ctx context.Context, id core.BookID, update UpdateAction) (core.BookRecord, error) {
	record, err := c.GetBook(ctx, id)
	if err != nil {
		return core.BookRecord{}, err
	}

	return c.dataStore.CreateOrUpdate(ctx, update(record))
}

// RemoveBook deletes the record for the given BookID from the collection.
// Returns an ErrBookNotFound error if no such record exists.
// Dispatches a BookRemoved event on success.
func (c *BookCollection) RemoveBook(ctx context.Context, id core.BookID) error {
	record, err := c.GetBook(ctx, id)
	if err != nil {
		return err
	}

	if err = c.dataStore.Delete(ctx, record); err != nil {
		return err
	}

	c.eventDispatcher.Dispatch(ctx, core.BuildBookRemoved(id, c.clock.Now()))

	return nil
}

// BorrowBook transitions the book with the given BookID to the Borrowed
// state and returns the updated record.
// Returns an ErrBookNotFound error if no such record exists and an
// ErrBookAlreadyBorrowed error if the book is currently borrowed; in the
// latter case the stored record is left untouched.
// Dispatches a BookBorrowed event on success.
func (c *BookCollection) BorrowBook(ctx context.Context, id core.BookID, by core.Borrower) (core.BookRecord, error) {
	record, err := c.GetBook(ctx, id)
	if err != nil {
		return core.BookRecord{}, err
	}

	now := c.clock.Now()

	borrowed, err := record.Borrow(by, now)
	if err != nil {
		return core.BookRecord{}, err
	}

	persisted, err := c.dataStore.CreateOrUpdate(ctx, borrowed)
	if err != nil {
		return core.BookRecord{}, err
	}

	c.eventDispatcher.Dispatch(ctx, core.BuildBookBorrowed(id, now))

	return persisted, nil
}

// ReturnBook transitions the book with the given BookID back to the
// Available state and returns the updated record.
// Returns an ErrBookNotFound error if no such record exists and an
// ErrBookAlreadyReturned error if the book is not currently borrowed; in
// the latter case the stored record is left untouched.
// Dispatches a BookReturned event on success.
func (c *BookCollection) ReturnBook(ctx context.Context, id core.BookID) (core.BookRecord, error) {
	record, err := c.GetBook(ctx, id)
	if err != nil {
		return core.BookRecord{}, err
	}

	returned, err := record.Return()
	if err != nil {
		return core.BookRecord{}, err
	}

	persisted, err := c.dataStore.CreateOrUpdate(ctx, returned)
	if err != nil {
		return core.BookRecord{}, err
	}

	c.eventDispatcher.Dispatch(ctx, core.BuildBookReturned(id, c.clock.Now()))

	return persisted, nil
}
