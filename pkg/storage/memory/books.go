package memory

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/storage"
	"sort"
)

// StoreBooks inserts books into the catalog, filling CreatedAt when unset.
func (s *Store) StoreBooks(_ context.Context, books ...domain.Book) ([]domain.Book, error) {
	if len(books) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Book, 0, len(books))
	for _, book := range books {
		if _, ok := s.books[book.ISBN]; ok {
			return nil, fmt.Errorf("book %q: %w", book.ISBN, storage.ErrAlreadyExists)
		}
		if book.CreatedAt.IsZero() {
			book.CreatedAt = s.now()
		}

		s.books[book.ISBN] = book
		out = append(out, book)
	}

	return out, nil
}

// BookByISBN returns a copy of the book with the given ISBN, or nil.
func (s *Store) BookByISBN(_ context.Context, isbn domain.ISBN) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, nil
	}

	return &book, nil
}

// SetBookAvailability flips the availability flag of a book and returns the
// updated record, or nil when the ISBN is unknown.
func (s *Store) SetBookAvailability(_ context.Context,
	isbn domain.ISBN,
	available bool) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, nil
	}

	book.Available = available
	s.books[isbn] = book

	return &book, nil
}

// Books returns all books ordered by registration time.
func (s *Store) Books(_ context.Context) ([]domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Book, 0, len(s.books))
	for _, book := range s.books {
		out = append(out, book)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ISBN < out[j].ISBN
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
