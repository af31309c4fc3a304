package memory

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/storage"

	"github.com/google/uuid"
)

// StoreLoans appends loans to the history.
func (s *Store) StoreLoans(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
	if len(loans) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Loan, 0, len(loans))
	for _, loan := range loans {
		if _, ok := s.loans[loan.ID]; ok {
			return nil, fmt.Errorf("loan %s: %w", uuid.UUID(loan.ID), storage.ErrAlreadyExists)
		}

		s.loans[loan.ID] = loan
		s.loanOrder = append(s.loanOrder, loan.ID)
		out = append(out, loan)
	}

	return out, nil
}

// LoanByID returns a copy of the loan with the given ID, or nil.
func (s *Store) LoanByID(_ context.Context, id domain.LoanID) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[id]
	if !ok {
		return nil, nil
	}

	return &loan, nil
}

// OpenLoanByISBN returns the active loan referencing the given book, or nil
// when the book is not currently out. The lending service keeps at most one
// loan per book active at a time, so the first match is returned.
func (s *Store) OpenLoanByISBN(_ context.Context, isbn domain.ISBN) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.loanOrder {
		loan := s.loans[id]
		if loan.BookISBN == isbn && loan.Active() {
			return &loan, nil
		}
	}

	return nil, nil
}

// UpdateLoanByID applies the provided field set to a loan and returns the
// updated record, or nil when the ID is unknown.
func (s *Store) UpdateLoanByID(_ context.Context,
	id domain.LoanID,
	updates storage.LoanUpdates) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[id]
	if !ok {
		return nil, nil
	}

	if updates.DueDate != nil {
		loan.DueDate = *updates.DueDate
	}
	if updates.Returned != nil {
		loan.Returned = *updates.Returned
	}
	if updates.ReturnedAt != nil {
		loan.ReturnedAt = *updates.ReturnedAt
	}

	s.loans[id] = loan

	return &loan, nil
}

// Loans returns the full history in insertion order.
func (s *Store) Loans(_ context.Context) ([]domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Loan, 0, len(s.loanOrder))
	for _, id := range s.loanOrder {
		out = append(out, s.loans[id])
	}

	return out, nil
}
