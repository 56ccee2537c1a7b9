// Package core contains the domain model for the library service:
// books, their lifecycle state and the domain events emitted on state changes.
//
// All types in this package are immutable values. A BookRecord is never
// mutated in place - every state transition returns a new record value, and
// invalid transitions (borrowing a borrowed book, returning an available one)
// are rejected with a typed domain error.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
