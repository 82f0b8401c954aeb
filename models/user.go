package models

import "time"

// User is an employee account of the CRM. Its Role decides how much of a
// sensitive value is disclosed to it.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is only populated on inbound register/login requests and is
	// never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// Role is the user's CRM role.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
