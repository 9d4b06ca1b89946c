package accounts

import "errors"

var (
	// ErrUserExists marks a registration with an already-taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound marks a lookup for an unknown username or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword marks a failed credential check.
	ErrWrongPassword = errors.New("incorrect password")
	// ErrStoreLocked marks a second process holding the user store.
	ErrStoreLocked = errors.New("user store is locked by another process")
)
