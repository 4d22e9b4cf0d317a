package models

import "time"

// User is an account of the backend. Every set, card and folder on the
// server is owned by exactly one user.
type User struct {
	// UserID is generated by the server at registration.
	UserID string `json:"user_id,omitempty"`

	// Login is unique across the backend.
	Login string `json:"login"`

	// Password is the plaintext password in requests and is never returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the server only.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
