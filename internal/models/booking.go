package models

import "time"

// BookingStatus is the persisted lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is a declared terminal status that no operation
	// currently produces. Kept for storage compatibility.
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking is a reservation of an item for the half-open interval [Start, End).
// Status is the only field that mutates after creation.
type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Status   BookingStatus `json:"status"`
}
