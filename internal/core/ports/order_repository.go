package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// OrderFilter narrows List results. Empty fields mean "no filter".
type OrderFilter struct {
	UserID string
	Status string
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns orders matching filter in creation order. An empty result
	// is a nil-error empty slice, never a failure.
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	// UpdateStatus sets only the status field and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
	// CompletedRevenue sums the total of all completed orders; zero when none.
	CompletedRevenue(ctx context.Context) (float64, error)
}
