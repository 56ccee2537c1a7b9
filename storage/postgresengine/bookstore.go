package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/NovatecConsulting/library-service-go/core"
	"github.com/NovatecConsulting/library-service-go/storage/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName       = "books"
	logMsgBuildQueryFailed      = "failed to build sql query"
	logMsgDBQueryFailed         = "database query execution failed"
	logMsgDBExecFailed          = "database execution failed"
	logMsgCloseRowsFailed       = "failed to close database rows"
	logMsgScanRowFailed         = "failed to scan database row"
	logMsgMapDocumentFailed     = "failed to map book document to record"
	logMsgMarshalDocumentFailed = "failed to marshal book document"
	logMsgBookStored            = "book stored"
	logMsgBookDeleted           = "book deleted"
	logMsgBooksQueried          = "books queried"
	logMsgSQLExecuted           = "executed sql for: "
	logMsgOperation             = "bookstore operation: "
	logAttrError                = "error"
	logAttrQuery                = "query"
	logAttrBookID               = "book_id"
	logAttrBookCount            = "book_count"
	logAttrDurationMS           = "duration_ms"
	logAttrRowsAffected         = "rows_affected"
	logActionUpsert             = "upsert"
	logActionSelect             = "select"
	logActionDelete             = "delete"
	colID                       = "id"
	colIsbn                     = "isbn"
	colTitle                    = "title"
	colAuthors                  = "authors"
	colNumberOfPages            = "number_of_pages"
	colBorrowed                 = "borrowed"
	dialectPostgres             = "postgres"
	castJsonb                   = "?::jsonb"
)

type (
	sqlQueryString = string
)

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// BookStore is the PostgreSQL implementation of collection.BookDataStore.
// It persists each BookRecord as a single row in a configurable books table.
type BookStore struct {
	db             adapters.DBAdapter
	booksTableName string
	logger         Logger
}

// Option defines a functional option for configuring a BookStore.
type Option func(*BookStore) error

// WithTableName sets the books table name for the BookStore.
func WithTableName(tableName string) Option {
	return func(bs *BookStore) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		bs.booksTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the BookStore.
//
// Debug level: SQL queries with execution timing (development use)
// Info level: row counts and durations (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(bs *BookStore) error {
		bs.logger = logger
		return nil
	}
}

// NewBookStoreFromPGXPool creates a new BookStore using a pgx Pool with optional configuration.
func NewBookStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*BookStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewPGXAdapter(db), options...)
}

// NewBookStoreFromSQLDB creates a new BookStore using a sql.DB with optional configuration.
func NewBookStoreFromSQLDB(db *sql.DB, options ...Option) (*BookStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewSQLAdapter(db), options...)
}

// NewBookStoreFromSQLX creates a new BookStore using a sqlx.DB with optional configuration.
func NewBookStoreFromSQLX(db *sqlx.DB, options ...Option) (*BookStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewSQLXAdapter(db), options...)
}

func newBookStore(db adapters.DBAdapter, options ...Option) (*BookStore, error) {
	bs := &BookStore{
		db:             db,
		booksTableName: defaultBooksTableName,
	}

	for _, option := range options {
		if err := option(bs); err != nil {
			return nil, err
		}
	}

	return bs, nil
}

// CreateOrUpdate persists the given BookRecord as a single-row upsert and
// returns the persisted value. Any existing row with the same BookID is
// overwritten unconditionally.
func (bs *BookStore) CreateOrUpdate(ctx context.Context, record core.BookRecord) (core.BookRecord, error) {
	sqlQuery, buildErr := bs.buildUpsertQuery(record)
	if buildErr != nil {
		return core.BookRecord{}, buildErr
	}

	start := time.Now()
	result, execErr := bs.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	bs.logQueryWithDuration(sqlQuery, logActionUpsert, duration)

	if execErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return core.BookRecord{}, errors.Join(ErrStoringBookFailed, execErr)
	}

	rowsAffected, _ := result.RowsAffected()

	bs.logOperation(
		logMsgBookStored,
		logAttrBookID, record.ID.String(),
		logAttrRowsAffected, rowsAffected,
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return record, nil
}

// ExistsByID reports whether a row exists for the given BookID.
func (bs *BookStore) ExistsByID(ctx context.Context, id core.BookID) (bool, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(bs.booksTableName).
		Select(goqu.L("1")).
		Where(goqu.Ex{colID: id.String()}).
		Limit(1)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		}

		return false, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := bs.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return false, queryErr
	}
	defer bs.closeRows(rows)

	return rows.Next(), nil
}

// FindByID returns the record for the given BookID, or nil if no row exists.
func (bs *BookStore) FindByID(ctx context.Context, id core.BookID) (*core.BookRecord, error) {
	sqlQuery, buildErr := bs.buildSelectQuery(&id)
	if buildErr != nil {
		return nil, buildErr
	}

	rows, duration, queryErr := bs.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer bs.closeRows(rows)

	if !rows.Next() {
		return nil, nil
	}

	record, scanErr := bs.scanRecord(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	bs.logOperation(
		logMsgBooksQueried,
		logAttrBookCount, 1,
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return &record, nil
}

// FindAll returns all records of the books table in store-defined order.
func (bs *BookStore) FindAll(ctx context.Context) ([]core.BookRecord, error) {
	sqlQuery, buildErr := bs.buildSelectQuery(nil)
	if buildErr != nil {
		return nil, buildErr
	}

	rows, duration, queryErr := bs.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer bs.closeRows(rows)

	records := make([]core.BookRecord, 0)

	for rows.Next() {
		record, scanErr := bs.scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		records = append(records, record)
	}

	bs.logOperation(
		logMsgBooksQueried,
		logAttrBookCount, len(records),
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return records, nil
}

// Delete removes the row for the given record's BookID.
func (bs *BookStore) Delete(ctx context.Context, record core.BookRecord) error {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(bs.booksTableName).
		Where(goqu.Ex{colID: record.ID.String()})

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		}

		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	result, execErr := bs.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	bs.logQueryWithDuration(sqlQuery, logActionDelete, duration)

	if execErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(ErrDeletingBookFailed, execErr)
	}

	rowsAffected, _ := result.RowsAffected()

	bs.logOperation(
		logMsgBookDeleted,
		logAttrBookID, record.ID.String(),
		logAttrRowsAffected, rowsAffected,
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return nil
}

func (bs *BookStore) buildUpsertQuery(record core.BookRecord) (sqlQueryString, error) {
	doc := documentFromRecord(record)

	authorsJSON, marshalErr := jsoniter.ConfigFastest.Marshal(doc.Authors)
	if marshalErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgMarshalDocumentFailed, logAttrError, marshalErr.Error())
		}

		return "", errors.Join(ErrStoringBookFailed, marshalErr)
	}

	var numberOfPages any
	if doc.NumberOfPages != nil {
		numberOfPages = *doc.NumberOfPages
	}

	var borrowed any
	if doc.Borrowed != nil {
		borrowedJSON, borrowedErr := jsoniter.ConfigFastest.Marshal(doc.Borrowed)
		if borrowedErr != nil {
			if bs.logger != nil {
				bs.logger.Error(logMsgMarshalDocumentFailed, logAttrError, borrowedErr.Error())
			}

			return "", errors.Join(ErrStoringBookFailed, borrowedErr)
		}

		borrowed = goqu.L(castJsonb, string(borrowedJSON))
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(bs.booksTableName).
		Cols(colID, colIsbn, colTitle, colAuthors, colNumberOfPages, colBorrowed).
		Vals(goqu.Vals{
			doc.ID,
			doc.Isbn,
			doc.Title,
			goqu.L(castJsonb, string(authorsJSON)),
			numberOfPages,
			borrowed,
		}).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{
			colIsbn:          doc.Isbn,
			colTitle:         doc.Title,
			colAuthors:       goqu.L(castJsonb, string(authorsJSON)),
			colNumberOfPages: numberOfPages,
			colBorrowed:      borrowed,
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		}

		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// buildSelectQuery builds the select for a single id, or for all rows when id is nil.
func (bs *BookStore) buildSelectQuery(id *core.BookID) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(bs.booksTableName).
		Select(colID, colIsbn, colTitle, colAuthors, colNumberOfPages, colBorrowed)

	if id != nil {
		selectStmt = selectStmt.Where(goqu.Ex{colID: id.String()})
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		}

		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (bs *BookStore) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := bs.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	bs.logQueryWithDuration(sqlQuery, logActionSelect, duration)

	if queryErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, errors.Join(ErrQueryingBooksFailed, queryErr)
	}

	return rows, duration, nil
}

// scanRecord scans the current row into a BookRecord.
func (bs *BookStore) scanRecord(rows adapters.DBRows) (core.BookRecord, error) {
	var (
		doc           bookDocument
		authorsRaw    []byte
		numberOfPages sql.NullInt64
		borrowedRaw   []byte
	)

	if scanErr := rows.Scan(&doc.ID, &doc.Isbn, &doc.Title, &authorsRaw, &numberOfPages, &borrowedRaw); scanErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return core.BookRecord{}, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(authorsRaw, &doc.Authors); unmarshalErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgMapDocumentFailed, logAttrError, unmarshalErr.Error())
		}

		return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, unmarshalErr)
	}

	if numberOfPages.Valid {
		pages := int(numberOfPages.Int64)
		doc.NumberOfPages = &pages
	}

	if len(borrowedRaw) > 0 {
		doc.Borrowed = &borrowedState{}
		if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(borrowedRaw, doc.Borrowed); unmarshalErr != nil {
			if bs.logger != nil {
				bs.logger.Error(logMsgMapDocumentFailed, logAttrError, unmarshalErr.Error())
			}

			return core.BookRecord{}, errors.Join(ErrMappingBookDocumentFailed, unmarshalErr)
		}
	}

	record, mapErr := recordFromDocument(doc)
	if mapErr != nil {
		if bs.logger != nil {
			bs.logger.Error(logMsgMapDocumentFailed, logAttrError, mapErr.Error())
		}

		return core.BookRecord{}, mapErr
	}

	return record, nil
}

// closeRows safely closes database rows and logs any errors.
func (bs *BookStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if bs.logger != nil {
			bs.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (bs *BookStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if bs.logger != nil {
		bs.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (bs *BookStore) logOperation(action string, args ...any) {
	if bs.logger != nil {
		bs.logger.Info(logMsgOperation+action, args...)
	}
}
