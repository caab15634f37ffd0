package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is not
// accepted from the client; every new account starts as customer.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements registration and credential verification. Session
// lifecycle is owned by SessionStore; the transport layer composes the two.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies email+password. A missing account and a wrong password
	// both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
