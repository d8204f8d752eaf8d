package domain

import (
	"errors"
	"time"
)

// Role is a coarse permission tier derived from the stored is_admin flag.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	// ErrUpstream marks record-store or network failures so they are never
	// reported to clients as credential problems.
	ErrUpstream = errors.New("record store unavailable")
)

// User models an identity held by the external record store. The core never
// persists it directly; it is read and written through the credential store
// adapter and treated as immutable for the lifetime of a request.
type User struct {
	ID           int       `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RolesFor derives the role set for a user. Pure and total: exactly one role
// per identity, recomputed from the is_admin flag on every resolution so
// privilege changes take effect on the next request.
func RolesFor(u *User) []Role {
	if u != nil && u.IsAdmin {
		return []Role{RoleAdmin}
	}
	return []Role{RoleUser}
}

// HasRole reports whether roles contains r.
func HasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}
