package collection

import (
	"context"
	"time"

	"github.com/NovatecConsulting/library-service-go/core"
)

// Clock provides the current time. All timestamps produced by the
// collection come from here, never from the wall clock directly,
// so tests can run against a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now.
type SystemClock struct{}

// Now returns the current wall clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// BookDataStore defines the interface which needs to be implemented by a
// data store in order to handle the persistence of books.
type BookDataStore interface {
	// CreateOrUpdate persists the given BookRecord and returns the
	// persisted value. Any existing record with the same BookID is
	// overwritten - the previous existence of a record has to be
	// verified by the caller.
	CreateOrUpdate(ctx context.Context, record core.BookRecord) (core.BookRecord, error)

	// ExistsByID reports whether a record exists for the given BookID.
	ExistsByID(ctx context.Context, id core.BookID) (bool, error)

	// FindByID returns the record for the given BookID,
	// or nil if no such record exists.
	FindByID(ctx context.Context, id core.BookID) (*core.BookRecord, error)

	// FindAll returns all records in store-defined order.
	FindAll(ctx context.Context) ([]core.BookRecord, error)

	// Delete removes the given record from the store.
	Delete(ctx context.Context, record core.BookRecord) error
}

// EventDispatcher publishes domain events to whoever is interested.
//
// Dispatching is fire-and-forget from the collection's perspective:
// implementations handle (and log) their own failures, a lost notification
// never fails the operation that produced it.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event core.BookEvent)
}
