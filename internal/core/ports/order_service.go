package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// OrderItemInput is a requested line item. Price and name are resolved
// server-side from the product record, never trusted from the client.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries all data needed to place an order. UserID is the
// session identity of the caller.
type CreateOrderInput struct {
	UserID string
	Items  []OrderItemInput
}

// ListOrdersInput carries the caller identity and the optional status filter.
// Role and UserID enforce ownership: customers only see their own orders.
type ListOrdersInput struct {
	Role   domain.Role
	UserID string
	Status string
}

// GetOrderInput carries the parameters to retrieve a single order.
type GetOrderInput struct {
	ID     string
	Role   domain.Role
	UserID string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, input ListOrdersInput) ([]*domain.Order, error)
	Get(ctx context.Context, input GetOrderInput) (*domain.Order, error)
	// UpdateStatus accepts only the four enumerated statuses and enforces the
	// transition graph.
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
}
