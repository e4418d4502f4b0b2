package models

import "time"

// UserType represents the role of a user account
type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeReferrer  UserType = "referrer"
	UserTypeAdmin     UserType = "admin"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeJobSeeker, UserTypeReferrer, UserTypeAdmin:
		return true
	}
	return false
}

// User represents a user entity
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	UserType     UserType  `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the participant snapshot embedded in referral
// requests and conversation listings.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserType:  u.UserType,
	}
}

// UserSummary is the public projection of a user
type UserSummary struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	UserType  UserType `json:"user_type"`
}
