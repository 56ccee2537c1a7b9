// Package testutil provides test helpers for the library service:
// an in-memory BookDataStore, a fixed clock, an event dispatcher spy
// and a couple of book fixtures.
package testutil
