// Package storage defines the core storage interfaces that the application relies on.
// It abstracts catalog and loan persistence so that different backends (e.g. an
// in-memory store) can provide concrete implementations.
package storage

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application. Implementations typically embed
// other narrower interfaces such as BookStorage or LoanStorage.
type AllStorage interface {
	BookStorage
	UserStorage
	LoanStorage
}

// Storage describes a full storage handle with lifecycle management.
// It exposes domain-specific capabilities plus Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error
}
