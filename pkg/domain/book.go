package domain

import "time"

// ISBN uniquely identifies a book within the catalog.
// It is a thin wrapper around string to provide type safety at the domain layer.
type ISBN string

// Book represents a single catalog entry. Title, Author and ISBN are fixed at
// registration time; Available is the only mutable field and is flipped by the
// lending service when the book is borrowed or returned.
type Book struct {
	// Title is the book's title.
	Title string `json:"title"`
	// Author is the book's author.
	Author string `json:"author"`
	// ISBN is the immutable identifier of the book.
	ISBN ISBN `json:"isbn"`

	// Available reports whether the book can currently be borrowed.
	// It is false exactly while an open loan references this book.
	Available bool `json:"available"`

	// CreatedAt is the time when the book was registered in the catalog.
	CreatedAt time.Time `json:"createdAt"`
}
