package models

import "time"

// UserRole is the permission level of a user account.
type UserRole string

// Supported user roles
const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// Valid reports whether r is one of the supported roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the account state of a user. It has no transition rules.
type UserStatus string

// Supported user statuses
const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// Valid reports whether s is one of the supported user statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User represents a user record
type User struct {
	ID        int64      `json:"id" db:"id"`                          // Server-assigned identifier
	Username  string     `json:"username" db:"username"`              // Unique username
	Email     string     `json:"email" db:"email"`                    // User email
	Role      UserRole   `json:"role" db:"role"`                      // Permission level
	Status    UserStatus `json:"status" db:"status"`                  // Account state
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`           // Creation timestamp, immutable
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"` // Last login timestamp, if any
}

// UserInput is the editable field set of a user, shared by create and update.
type UserInput struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     UserRole   `json:"role"`
	Status   UserStatus `json:"status"`
}

// Input returns the editable fields of u.
func (u User) Input() UserInput {
	return UserInput{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
}
