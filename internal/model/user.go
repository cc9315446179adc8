package model

import (
	"fmt"
	"strings"
	"time"
)

// Role represents what a user is allowed to manage.
type Role string

const (
	// RoleMember can work on the projects of its organisation.
	RoleMember Role = "member"
	// RoleAdmin can additionally manage users and the reference data.
	RoleAdmin Role = "admin"
)

// ParseRole parses a user role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleMember:
		return RoleMember, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q: %w", s, ErrNotValid)
	}
}

// User represents an account inside an organisation.
type User struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"orgId" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Name         string    `json:"name" validate:"required"`
	Role         Role      `json:"role" validate:"omitempty,oneof=member admin"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Normalize fills defaulted fields.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleMember
	}
}

// Validate validates the user.
func (u *User) Validate() error {
	if err := ValidateStruct(u); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

// Session is a login session identified by its bearer token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired returns whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
