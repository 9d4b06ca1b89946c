package library

import "errors"

var (
	// ErrDuplicate marks an attempt to add a movie whose title already
	// exists in the collection.
	ErrDuplicate = errors.New("duplicate movie")
	// ErrNotFound marks a lookup for an id or title with no match.
	ErrNotFound = errors.New("movie not found")
)
