package collection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovatecConsulting/library-service-go/collection"
	"github.com/NovatecConsulting/library-service-go/core"
	"github.com/NovatecConsulting/library-service-go/testutil"
)

var errStoreDown = errors.New("data store is down")

type fixture struct {
	collection *collection.BookCollection
	dataStore  *testutil.InMemoryBookDataStore
	clock      testutil.FixedClock
	dispatcher *testutil.EventDispatcherSpy
}

func newFixture() fixture {
	dataStore := testutil.NewInMemoryBookDataStore()
	clock := testutil.ClockFixedAt("2017-09-23T12:34:56.789Z")
	dispatcher := testutil.NewEventDispatcherSpy()

	return fixture{
		collection: collection.NewBookCollection(
			clock,
			dataStore,
			collection.NewBookIDGenerator(dataStore),
			dispatcher,
		),
		dataStore:  dataStore,
		clock:      clock,
		dispatcher: dispatcher,
	}
}

func (f fixture) addBook(t *testing.T, book core.Book) core.BookRecord {
	t.Helper()

	record, err := f.collection.AddBook(context.Background(), book)
	require.NoError(t, err)
	f.dispatcher.Reset()

	return record
}

/*** AddBook ***/

func Test_BookCollection_AddBook_StoresAnAvailableRecord(t *testing.T) {
	// arrange
	f := newFixture()
	book := testutil.BookCleanCode()

	// act
	record, err := f.collection.AddBook(context.Background(), book)

	// assert
	require.NoError(t, err)
	assert.False(t, record.ID.IsZero())
	assert.Equal(t, book, record.Book)
	assert.Equal(t, core.Available{}, record.State)

	stored, err := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, stored)
}

func Test_BookCollection_AddBook_DispatchesBookAdded(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	record, err := f.collection.AddBook(context.Background(), testutil.BookCleanCode())

	// assert
	require.NoError(t, err)
	events := f.dispatcher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, core.BookAddedEventType, events[0].EventType())
	assert.Equal(t, record.ID.String(), events[0].AffectedBookID())
	assert.Equal(t, core.ToOccurredAt(f.clock.Time), events[0].HasOccurredAt())
}

func Test_BookCollection_AddBook_GeneratesDistinctIDs(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	first, err := f.collection.AddBook(context.Background(), testutil.BookCleanCode())
	require.NoError(t, err)
	second, err := f.collection.AddBook(context.Background(), testutil.BookCleanCode())
	require.NoError(t, err)

	// assert
	assert.NotEqual(t, first.ID, second.ID)
}

func Test_BookCollection_AddBook_DispatchesNothingWhenStoringFails(t *testing.T) {
	// arrange
	f := newFixture()
	f.dataStore.CreateOrUpdateErr = errStoreDown

	// act
	_, err := f.collection.AddBook(context.Background(), testutil.BookCleanCode())

	// assert
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, f.dispatcher.Events())
}

/*** GetBook / GetAllBooks ***/

func Test_BookCollection_GetBook_FailsForUnknownID(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	_, err := f.collection.GetBook(context.Background(), core.NewBookID())

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_BookCollection_GetAllBooks_ReturnsAllStoredRecords(t *testing.T) {
	// arrange
	f := newFixture()
	first := f.addBook(t, testutil.BookCleanCode())
	second := f.addBook(t, testutil.BookTheMartian())

	// act
	records, err := f.collection.GetAllBooks(context.Background())

	// assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.BookRecord{first, second}, records)
}

func Test_BookCollection_GetAllBooks_ReturnsEmptyForEmptyCollection(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	records, err := f.collection.GetAllBooks(context.Background())

	// assert
	require.NoError(t, err)
	assert.Empty(t, records)
}

/*** UpdateBook ***/

func Test_BookCollection_UpdateBook_PersistsTheTransformedRecord(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())
	newTitle, err := core.NewTitle("Clean Coder")
	require.NoError(t, err)

	// act
	updated, err := f.collection.UpdateBook(context.Background(), record.ID, func(r core.BookRecord) core.BookRecord {
		return r.ChangeTitle(newTitle)
	})

	// assert
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Book.Title)

	stored, err := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func Test_BookCollection_UpdateBook_FailsForUnknownID(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	_, err := f.collection.UpdateBook(context.Background(), core.NewBookID(), func(r core.BookRecord) core.BookRecord {
		return r
	})

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

/*** RemoveBook ***/

func Test_BookCollection_RemoveBook_DeletesTheRecordAndDispatchesBookRemoved(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())

	// act
	err := f.collection.RemoveBook(context.Background(), record.ID)

	// assert
	require.NoError(t, err)

	_, err = f.collection.GetBook(context.Background(), record.ID)
	assert.ErrorIs(t, err, core.ErrBookNotFound)

	events := f.dispatcher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, core.BookRemovedEventType, events[0].EventType())
	assert.Equal(t, record.ID.String(), events[0].AffectedBookID())
}

func Test_BookCollection_RemoveBook_FailsForUnknownID(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	err := f.collection.RemoveBook(context.Background(), core.NewBookID())

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
	assert.Empty(t, f.dispatcher.Events())
}

func Test_BookCollection_RemoveBook_DispatchesNothingWhenDeletingFails(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())
	f.dataStore.DeleteErr = errStoreDown

	// act
	err := f.collection.RemoveBook(context.Background(), record.ID)

	// assert
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, f.dispatcher.Events())
}

/*** BorrowBook ***/

func Test_BookCollection_BorrowBook_TransitionsToBorrowedAndDispatchesBookBorrowed(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())
	borrower := testutil.MustBorrower("slu")

	// act
	borrowed, err := f.collection.BorrowBook(context.Background(), record.ID, borrower)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Borrowed{By: borrower, On: core.ToOccurredAt(f.clock.Time)}, borrowed.State)

	stored, err := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, borrowed, stored)

	events := f.dispatcher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, core.BookBorrowedEventType, events[0].EventType())
	assert.Equal(t, record.ID.String(), events[0].AffectedBookID())
	assert.Equal(t, core.ToOccurredAt(f.clock.Time), events[0].HasOccurredAt())
}

func Test_BookCollection_BorrowBook_FailsForUnknownID(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	_, err := f.collection.BorrowBook(context.Background(), core.NewBookID(), testutil.MustBorrower("slu"))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
	assert.Empty(t, f.dispatcher.Events())
}

func Test_BookCollection_BorrowBook_FailsWhenAlreadyBorrowed(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())
	borrowed, err := f.collection.BorrowBook(context.Background(), record.ID, testutil.MustBorrower("slu"))
	require.NoError(t, err)
	f.dispatcher.Reset()

	// act
	_, err = f.collection.BorrowBook(context.Background(), record.ID, testutil.MustBorrower("sgr"))

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyBorrowed)
	assert.Empty(t, f.dispatcher.Events())

	stored, storeErr := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, storeErr)
	assert.Equal(t, borrowed, stored, "a failed borrow must not change the stored record")
}

/*** ReturnBook ***/

func Test_BookCollection_ReturnBook_TransitionsBackToAvailableAndDispatchesBookReturned(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())
	_, err := f.collection.BorrowBook(context.Background(), record.ID, testutil.MustBorrower("slu"))
	require.NoError(t, err)
	f.dispatcher.Reset()

	// act
	returned, err := f.collection.ReturnBook(context.Background(), record.ID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Available{}, returned.State)

	stored, err := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, returned, stored)

	events := f.dispatcher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, core.BookReturnedEventType, events[0].EventType())
	assert.Equal(t, record.ID.String(), events[0].AffectedBookID())
}

func Test_BookCollection_ReturnBook_FailsForUnknownID(t *testing.T) {
	// arrange
	f := newFixture()

	// act
	_, err := f.collection.ReturnBook(context.Background(), core.NewBookID())

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
	assert.Empty(t, f.dispatcher.Events())
}

func Test_BookCollection_ReturnBook_FailsWhenNotBorrowed(t *testing.T) {
	// arrange
	f := newFixture()
	record := f.addBook(t, testutil.BookCleanCode())

	// act
	_, err := f.collection.ReturnBook(context.Background(), record.ID)

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyReturned)
	assert.Empty(t, f.dispatcher.Events())

	stored, storeErr := f.collection.GetBook(context.Background(), record.ID)
	require.NoError(t, storeErr)
	assert.Equal(t, record, stored, "a failed return must not change the stored record")
}
