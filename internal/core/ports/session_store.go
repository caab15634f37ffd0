package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// SessionStore maps opaque tokens to signed-in identities. Implementations
// must be safe for concurrent use; handlers never lock around it.
type SessionStore interface {
	// Create binds a fresh unpredictable token to the identity.
	Create(ctx context.Context, userID string, role domain.Role) (string, error)
	// Resolve returns the identity for token, or domain.ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Destroy invalidates token. Destroying an unknown or already-destroyed
	// token returns domain.ErrSessionNotFound, never a crash.
	Destroy(ctx context.Context, token string) error
}
