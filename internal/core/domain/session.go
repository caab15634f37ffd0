package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side identity bound to an opaque token. The role is a
// snapshot taken at login; a role change takes effect on the next login.
type Session struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
