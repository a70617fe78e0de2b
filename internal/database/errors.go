package database

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	// ErrAlreadyDecided is returned by the atomic status transition when
	// the booking is no longer WAITING.
	ErrAlreadyDecided = errors.New("booking already decided")
)
