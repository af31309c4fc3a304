package storage

import (
	"context"
	"library/pkg/domain"
)

// BookStorage defines catalog operations for books. Lookups return nil (not an
// error) when no matching record exists; callers decide whether that is fatal.
type BookStorage interface {
	// StoreBooks inserts one or more books and returns the stored records as
	// they exist in the store (including generated fields such as CreatedAt).
	// Inserting an ISBN that is already present fails with ErrAlreadyExists.
	StoreBooks(ctx context.Context, books ...domain.Book) ([]domain.Book, error)
	// BookByISBN fetches a book by its ISBN. Returns nil when not found.
	BookByISBN(ctx context.Context, isbn domain.ISBN) (*domain.Book, error)
	// SetBookAvailability updates the availability flag of the book with the
	// given ISBN and returns the updated record, or nil if it was not found.
	SetBookAvailability(ctx context.Context, isbn domain.ISBN, available bool) (*domain.Book, error)
	// Books returns all registered books in registration order.
	Books(ctx context.Context) ([]domain.Book, error)
}
