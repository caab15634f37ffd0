package ports

import (
	"context"
	"time"

	"github.com/shoplite/storefront/internal/core/domain"
)

// ProductView is the read model for products: the stored fields plus the
// resolved category name, mirroring what the storefront renders.
type ProductView struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Stock        int
	CategoryID   string
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
}

// CreateCategoryInput carries all data needed to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// CatalogService defines use-case operations over products and categories.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]ProductView, error)
	GetProduct(ctx context.Context, id string) (*ProductView, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error)
	UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (*ProductView, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*domain.Category, error)
	// DeleteCategory fails with domain.ErrCategoryInUse while any product
	// still references the category.
	DeleteCategory(ctx context.Context, id string) error
}
