package postgresengine

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is supplied to a factory method.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrBuildingQueryFailed is returned when a SQL query cannot be built.
	ErrBuildingQueryFailed = errors.New("building sql query failed")

	// ErrQueryingBooksFailed is returned when a select against the books table fails.
	ErrQueryingBooksFailed = errors.New("querying books failed")

	// ErrStoringBookFailed is returned when an upsert into the books table fails.
	ErrStoringBookFailed = errors.New("storing book failed")

	// ErrDeletingBookFailed is returned when a delete from the books table fails.
	ErrDeletingBookFailed = errors.New("deleting book failed")

	// ErrScanningDBRowFailed is returned when a database row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrMappingBookDocumentFailed is returned when a stored document cannot be
	// mapped back into a valid BookRecord.
	ErrMappingBookDocumentFailed = errors.New("mapping book document to record failed")
)
