package storage

import (
	"context"
	"library/pkg/domain"
)

// UserStorage defines operations for registered users. Users are immutable
// after creation, so there is no update operation.
type UserStorage interface {
	// StoreUsers inserts one or more users and returns the stored records.
	// Inserting a user ID that is already present fails with ErrAlreadyExists.
	StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
