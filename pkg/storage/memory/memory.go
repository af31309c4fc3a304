// Package memory provides an in-memory implementation of the storage
// interfaces. It owns the catalog and loan collections that loans reference by
// identifier. State lives for the duration of the process only.
package memory

import (
	"library/pkg/domain"
	"library/pkg/storage"
	"sync"
	"time"
)

// Store implements storage.Storage backed by plain maps. A single mutex
// guards all collections; operations copy records in and out so callers never
// share memory with the store.
type Store struct {
	mu sync.Mutex

	books map[domain.ISBN]domain.Book
	users map[domain.UserID]domain.User
	loans map[domain.LoanID]domain.Loan

	// loanOrder preserves insertion order of the append-only loan history.
	loanOrder []domain.LoanID

	// now is the clock used for generated timestamps. Overridable in tests.
	now func() time.Time
}

// compile-time interface check
var _ storage.Storage = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		books: make(map[domain.ISBN]domain.Book),
		users: make(map[domain.UserID]domain.User),
		loans: make(map[domain.LoanID]domain.Loan),
		now:   time.Now,
	}
}

// Close releases the store's collections. After Close, the instance should
// not be used.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = nil
	s.users = nil
	s.loans = nil
	s.loanOrder = nil

	return nil
}
