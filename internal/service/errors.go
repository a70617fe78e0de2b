package service

import "errors"

var (
	// ErrInvalidInterval rejects bookings whose start is not strictly
	// before their end.
	ErrInvalidInterval = errors.New("booking start must be before end")

	// ErrItemNotAvailable rejects bookings of items withdrawn from rental.
	ErrItemNotAvailable = errors.New("item is not available for booking")

	// ErrOwnBooking rejects an owner booking their own item. Surfaced to
	// clients as not-found so owners cannot probe through booking attempts.
	ErrOwnBooking = errors.New("owner cannot book own item")

	// ErrAccessDenied means the actor exists but lacks rights to decide
	// on the booking. Distinct from not-found: existence is not in question.
	ErrAccessDenied = errors.New("user is not the item owner")

	// ErrNoCompletedBooking rejects comments from users without a finished
	// approved booking of the item.
	ErrNoCompletedBooking = errors.New("no completed booking of this item by this user")
)
