package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// UpdateUserInput is the admin-facing partial update. The password is never
// mutable through this path.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *string
}

// UserService defines the admin use-case operations over accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
