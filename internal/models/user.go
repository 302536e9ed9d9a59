package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Values arriving from the outside
// must go through ParseRole; comparisons are always against the constants.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// User is a credential-store record. PasswordHash never leaves the process:
// it is excluded from JSON and must not appear in logs. APIKey is assigned
// at registration and is part of the user view (callers see it at login and
// in the admin listing).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	APIKey       *string   `json:"api_key" db:"api_key"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
