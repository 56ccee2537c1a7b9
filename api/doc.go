// Package api exposes the book collection over HTTP.
//
// It is a thin adapter: request payloads are validated into domain value
// types, the BookCollection does the actual work, and domain errors are
// mapped onto status codes - 400 for malformed input, 404 for unknown
// books, 409 for conflicting state transitions. Error responses carry an
// ErrorDescription body so consumers can correlate failures with log
// entries.
package api
