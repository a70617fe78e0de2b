package models

import "time"

// ItemRequest is a wish for an item that is not listed yet. Owners may
// create items in answer to a request.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}
