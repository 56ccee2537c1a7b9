package core

import (
	"time"
)

// BookState is the lifecycle state of a BookRecord. It is a closed union:
// the only implementations are Available and Borrowed.
type BookState interface {
	isBookState()
}

// Available is the state of a book that can be borrowed.
// It is the initial state of every BookRecord.
type Available struct{}

// Borrowed is the state of a book that is currently borrowed.
// It always carries who borrowed the book and when.
type Borrowed struct {
	By Borrower
	On time.Time
}

func (Available) isBookState() {}
func (Borrowed) isBookState()  {}
