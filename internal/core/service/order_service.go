package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// OrderService implements order placement and lifecycle use cases.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, logger: logger}
}

// Create places an order for the session user. Line-item names and prices are
// snapshotted from the product records and the total is computed server-side.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64
	for _, it := range input.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
		}
		product, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < it.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for %q", domain.ErrValidation, product.Name)
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  it.Quantity,
		})
		total += product.Price * float64(it.Quantity)
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:    input.UserID,
		Items:     items,
		Total:     total,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// Reserve stock after the order exists. Concurrent orders race with
	// last-write-wins semantics, a stated limitation of this design.
	for _, it := range items {
		if err := s.decrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.Warn().Err(err).Str("product_id", it.ProductID).Msg("failed to decrement stock")
		}
	}

	s.logger.Info().Str("order_id", order.ID).Str("user_id", order.UserID).Float64("total", order.Total).Msg("order placed")
	return order, nil
}

// List returns orders visible to the caller. Customers are always scoped to
// their own orders; admins see everything.
func (s *OrderService) List(ctx context.Context, input ports.ListOrdersInput) ([]*domain.Order, error) {
	if input.Status != "" && !domain.OrderStatus(input.Status).Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}

	filter := ports.OrderFilter{Status: input.Status}
	if input.Role != domain.RoleAdmin {
		filter.UserID = input.UserID
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// Get returns a single order. A customer asking for another user's order sees
// a not-found, not a forbidden, so order ids cannot be probed.
func (s *OrderService) Get(ctx context.Context, input ports.GetOrderInput) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Role != domain.RoleAdmin && order.UserID != input.UserID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("from", string(order.Status)).Str("to", string(next)).Msg("order status updated")
	return updated, nil
}

func (s *OrderService) decrementStock(ctx context.Context, productID string, quantity int) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	stock := product.Stock - quantity
	if stock < 0 {
		stock = 0
	}
	_, err = s.products.Update(ctx, productID, ports.ProductUpdate{Stock: &stock})
	return err
}
