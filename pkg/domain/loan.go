package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoanID uniquely identifies a loan record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type LoanID uuid.UUID

// Loan represents a single lending of a book to a user. It references the
// book and the user by their identifiers; the referenced records are owned by
// the storage layer and outlive the loan. Loans are append-only: once created
// they are kept for history and never deleted.
type Loan struct {
	// ID is the unique identifier of the loan.
	ID LoanID `json:"id"`
	// BookISBN references the borrowed book.
	BookISBN ISBN `json:"bookIsbn"`
	// UserID references the borrowing user.
	UserID UserID `json:"userId"`

	// LoanDate is the time when the loan was created.
	LoanDate time.Time `json:"loanDate"`
	// DueDate is the time by which the book should be returned. It is
	// nominally LoanDate plus the configured loan period but may be
	// overwritten afterwards.
	DueDate time.Time `json:"dueDate"`

	// Returned reports whether the book has been returned. A loan starts
	// active (false) and transitions to returned (true) exactly once.
	Returned bool `json:"returned"`
	// ReturnedAt is the time of the return; zero value while the loan is active.
	ReturnedAt time.Time `json:"returnedAt,omitzero"`
}

// Active reports whether the book is still out, i.e. the loan has not been
// returned yet.
func (l Loan) Active() bool { return !l.Returned }
