package memory

import (
	"context"
	"fmt"
	"library/pkg/domain"
	"library/pkg/storage"
)

// StoreUsers registers users in the store.
func (s *Store) StoreUsers(_ context.Context, users ...domain.User) ([]domain.User, error) {
	if len(users) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		if _, ok := s.users[user.ID]; ok {
			return nil, fmt.Errorf("user %q: %w", user.ID, storage.ErrAlreadyExists)
		}

		s.users[user.ID] = user
		out = append(out, user)
	}

	return out, nil
}

// UserByID returns a copy of the user with the given ID, or nil.
func (s *Store) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return &user, nil
}
