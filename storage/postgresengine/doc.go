// Package postgresengine provides the PostgreSQL implementation of the
// library service's persistence boundary.
//
// It contains two components built on the same adapter stack:
//
//   - BookStore implements collection.BookDataStore with a document-style
//     books table (one row per BookRecord, authors and borrowed state as
//     jsonb columns). Writes are single-row upserts, so Postgres serializes
//     concurrent writes per BookID.
//   - EventLog implements collection.EventDispatcher by appending dispatched
//     domain events to an append-only book_events table. Dispatching is
//     fire-and-forget: failures are logged, never returned.
//
// Multiple database adapters are supported (pgx, sql.DB, sqlx) behind a
// common DBAdapter interface.
//
// Expected schema:
//
//	CREATE TABLE books (
//	    id              uuid PRIMARY KEY,
//	    isbn            text NOT NULL,
//	    title           text NOT NULL,
//	    authors         jsonb NOT NULL DEFAULT '[]',
//	    number_of_pages integer,
//	    borrowed        jsonb
//	);
//
//	CREATE TABLE book_events (
//	    sequence_number bigserial PRIMARY KEY,
//	    event_type      text NOT NULL,
//	    occurred_at     timestamp with time zone NOT NULL,
//	    payload         jsonb NOT NULL
//	);
//
// Usage:
//
//	pool, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewBookStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
//	eventLog, _ := postgresengine.NewEventLogFromPGXPool(pool, postgresengine.WithEventLogLogger(logger))
package postgresengine
