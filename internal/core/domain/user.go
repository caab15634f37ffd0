package domain

import (
	"errors"
	"time"
)

// Role is the closed set of privilege levels. Any value outside the set is
// rejected at the boundary, never silently passed through.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWeakPassword = errors.New("password does not meet the password policy")
var ErrValidation = errors.New("validation failed")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
