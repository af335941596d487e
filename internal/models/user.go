package models

import "time"

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Profile is the public view of a user returned by /profile.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Profile strips credentials from the user record.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Role: u.Role}
}
