package models

import (
	"time"
)

// Role defines what a user may do on the portal
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID             string    `json:"_id" db:"id" example:"6f1c2a40-8c1e-4a51-9d8a-1f2b3c4d5e6f"`
	Name           string    `json:"name" db:"name" example:"Jane Doe"`
	Email          string    `json:"email" db:"email" example:"jane@example.com"`
	Password       string    `json:"-" db:"password"`
	Role           Role      `json:"role" db:"role" example:"alumni"`
	ProfilePicture *string   `json:"profilePicture,omitempty" db:"profile_picture" example:"http://localhost:5000/uploads/profiles/a.png"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the populated form of a user reference
type UserSummary struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	Role           Role    `json:"role,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// Summary returns the full reference shape of the user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
	}
}
