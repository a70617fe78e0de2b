package models

// Item is a thing offered for rental by its owner. Available gates new
// bookings; an unavailable item stays visible to its owner.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	// RequestID links the item to the request it was offered for, if any.
	RequestID int64 `json:"request_id,omitempty"`
}
