package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// UserUpdate carries a partial update; nil fields keep their prior value.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *domain.Role
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ExistsByUsernameOrEmail runs a single existence query over both fields.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
