// Package library manages a user's ordered movie collection: CRUD, search,
// filtering, non-mutating sorts, comments, and the watched/unwatched state
// machine. Failed operations never modify the collection.
package library
