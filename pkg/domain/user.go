package domain

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around string to provide type safety at the domain layer.
type UserID string

// User represents a registered borrower. Users are immutable after creation.
type User struct {
	// ID is the immutable identifier of the user.
	ID UserID `json:"id"`
	// Name is the user's display name, used when addressing notifications.
	Name string `json:"name"`
}
