package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// ProductUpdate carries a partial update; nil fields keep their prior value.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// CategoryUpdate carries a partial update; nil fields keep their prior value.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns all products in creation order.
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// CountByCategory reports how many products reference the given category.
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, upd CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
