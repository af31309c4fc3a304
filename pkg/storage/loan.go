package storage

import (
	"context"
	"library/pkg/domain"
	"time"
)

// LoanUpdates describes a set of optional fields that can be applied to an
// existing loan during an update. Only non-nil fields will be applied.
type LoanUpdates struct {
	// DueDate, when provided, overwrites the loan's due date.
	DueDate *time.Time
	// Returned, when provided, sets the returned flag.
	Returned *bool
	// ReturnedAt, when provided, sets the time of the return.
	ReturnedAt *time.Time
}

// LoanStorage defines operations on the loan history. The history is
// append-only: loans are inserted and updated but never deleted.
type LoanStorage interface {
	// StoreLoans inserts one or more loans and returns the stored records.
	// Inserting a loan ID that is already present fails with ErrAlreadyExists.
	StoreLoans(ctx context.Context, loans ...domain.Loan) ([]domain.Loan, error)
	// LoanByID fetches a loan by its ID. Returns nil when not found.
	LoanByID(ctx context.Context, id domain.LoanID) (*domain.Loan, error)
	// OpenLoanByISBN returns the active (not yet returned) loan referencing
	// the given book, or nil when the book is not currently out.
	OpenLoanByISBN(ctx context.Context, isbn domain.ISBN) (*domain.Loan, error)
	// UpdateLoanByID updates a single loan identified by its ID and returns
	// the updated record, or nil if it was not found. Only provided fields
	// are changed.
	UpdateLoanByID(ctx context.Context, id domain.LoanID, updates LoanUpdates) (*domain.Loan, error)
	// Loans returns the full loan history in insertion (chronological) order.
	Loans(ctx context.Context) ([]domain.Loan, error)
}
