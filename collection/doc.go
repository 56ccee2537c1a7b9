// Package collection implements the book collection of the library service.
//
// BookCollection is the sole writer of BookRecords. It coordinates the
// injected data store, clock, id generator and event dispatcher, enforces
// the book lifecycle invariants (no double-borrow, no double-return) and
// dispatches a domain event after every successful mutating operation.
//
// The collection itself is stateless - correctness under concurrent
// modification of the same BookID depends on the data store's per-record
// write atomicity. There is no optimistic version check at this layer.
package collection
