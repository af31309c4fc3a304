package lending

import (
	"context"
	"library/pkg/domain"
)

// Service orchestrates the loan workflow. It depends only on the fine.Policy
// and notify.Channel abstractions supplied at construction, never on concrete
// variants.
type Service interface {
	// Borrow lends the book with the given ISBN to the given user and
	// notifies them of the due date.
	Borrow(ctx context.Context, isbn domain.ISBN, userID domain.UserID) (*domain.Loan, error)
	// Return closes an active loan, computing a late fine when applicable.
	Return(ctx context.Context, loanID domain.LoanID) error
	// History returns all loans ever created, in chronological order.
	History(ctx context.Context) ([]domain.Loan, error)
}
