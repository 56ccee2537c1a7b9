package postgresengine

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/NovatecConsulting/library-service-go/core"
	"github.com/NovatecConsulting/library-service-go/storage/postgresengine/internal/adapters"
)

const (
	defaultEventsTableName   = "book_events"
	logMsgEventAppended      = "event appended"
	logMsgEventAppendFailed  = "failed to append event, notification is lost"
	logMsgMarshalEventFailed = "failed to marshal event payload, notification is lost"
	logAttrEventType         = "event_type"
	colEventType             = "event_type"
	colOccurredAt            = "occurred_at"
	colPayload               = "payload"
	castTimestamp            = "?::timestamp with time zone"
)

// eventPayload is the jsonb representation of a dispatched domain event.
type eventPayload struct {
	BookID    string `json:"bookId"`
	Timestamp string `json:"timestamp"`
}

// EventLog implements collection.EventDispatcher by appending every
// dispatched domain event to an append-only events table.
//
// Dispatching is best-effort: a failed append is logged and the
// notification is lost, the triggering operation is never failed.
type EventLog struct {
	db              adapters.DBAdapter
	eventsTableName string
	logger          Logger
}

// EventLogOption defines a functional option for configuring an EventLog.
type EventLogOption func(*EventLog) error

// WithEventsTableName sets the events table name for the EventLog.
func WithEventsTableName(tableName string) EventLogOption {
	return func(el *EventLog) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		el.eventsTableName = tableName

		return nil
	}
}

// WithEventLogLogger sets the logger for the EventLog.
func WithEventLogLogger(logger Logger) EventLogOption {
	return func(el *EventLog) error {
		el.logger = logger
		return nil
	}
}

// NewEventLogFromPGXPool creates a new EventLog using a pgx Pool with optional configuration.
func NewEventLogFromPGXPool(db *pgxpool.Pool, options ...EventLogOption) (*EventLog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEventLog(adapters.NewPGXAdapter(db), options...)
}

// NewEventLogFromSQLDB creates a new EventLog using a sql.DB with optional configuration.
func NewEventLogFromSQLDB(db *sql.DB, options ...EventLogOption) (*EventLog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEventLog(adapters.NewSQLAdapter(db), options...)
}

// NewEventLogFromSQLX creates a new EventLog using a sqlx.DB with optional configuration.
func NewEventLogFromSQLX(db *sqlx.DB, options ...EventLogOption) (*EventLog, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEventLog(adapters.NewSQLXAdapter(db), options...)
}

func newEventLog(db adapters.DBAdapter, options ...EventLogOption) (*EventLog, error) {
	el := &EventLog{
		db:              db,
		eventsTableName: defaultEventsTableName,
	}

	for _, option := range options {
		if err := option(el); err != nil {
			return nil, err
		}
	}

	return el, nil
}

// Dispatch appends the given domain event to the events table.
// Failures are logged and swallowed - a lost notification must not fail
// the operation that produced it.
func (el *EventLog) Dispatch(ctx context.Context, event core.BookEvent) {
	payload := eventPayload{
		BookID:    event.AffectedBookID(),
		Timestamp: event.HasOccurredAt().UTC().Format(time.RFC3339Nano),
	}

	payloadJSON, marshalErr := jsoniter.ConfigFastest.Marshal(payload)
	if marshalErr != nil {
		if el.logger != nil {
			el.logger.Error(logMsgMarshalEventFailed, logAttrError, marshalErr.Error(), logAttrEventType, event.EventType())
		}

		return
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(el.eventsTableName).
		Cols(colEventType, colOccurredAt, colPayload).
		Vals(goqu.Vals{
			event.EventType(),
			goqu.L(castTimestamp, event.HasOccurredAt().UTC().Format(time.RFC3339Nano)),
			goqu.L(castJsonb, string(payloadJSON)),
		})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if el.logger != nil {
			el.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error(), logAttrEventType, event.EventType())
		}

		return
	}

	start := time.Now()
	_, execErr := el.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)

	if el.logger != nil {
		el.logger.Debug(logMsgSQLExecuted+"append", logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if execErr != nil {
		if el.logger != nil {
			el.logger.Error(logMsgEventAppendFailed, logAttrError, execErr.Error(), logAttrEventType, event.EventType())
		}

		return
	}

	if el.logger != nil {
		el.logger.Info(logMsgOperation+logMsgEventAppended,
			logAttrEventType, event.EventType(),
			logAttrBookID, event.AffectedBookID(),
			logAttrDurationMS, durationToMilliseconds(duration),
		)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
