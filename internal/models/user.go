package models

// User is an account that can own items, book items and leave comments.
// Email is unique across users.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
