package store

import "errors"

var (
	// ErrNotFound means the targeted record id is absent from the store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
