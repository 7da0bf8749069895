package domain

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleRecruiter Role = "RECRUITER"
	RoleJobseeker Role = "JOBSEEKER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleJobseeker:
		return true
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserPending   UserStatus = "PENDING"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserSuspended, UserPending:
		return true
	}
	return false
}

// Skill is a named skill on a jobseeker profile.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Profile carries the user-editable identity details.
type Profile struct {
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Location  string  `json:"location,omitempty"`
	Bio       string  `json:"bio,omitempty"`
	Skills    []Skill `json:"skills,omitempty"`
}

// User models a registered account. The password hash never leaves the
// process; json marshalling excludes it.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Profile      Profile    `json:"profile"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
