package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

func newOrderFixture(t *testing.T) (*OrderService, *memOrderRepo, *memProductRepo, *domain.Product, *domain.Product) {
	t.Helper()
	orders := newMemOrderRepo()
	products := newMemProductRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())

	book, err := products.Create(context.Background(), &domain.Product{
		Name: "Go in Action", Price: 29.99, Stock: 10, CategoryID: "c1",
	})
	if err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	chess, err := products.Create(context.Background(), &domain.Product{
		Name: "Chess Set", Price: 15, Stock: 2, CategoryID: "c2",
	})
	if err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return svc, orders, products, book, chess
}

func TestOrderService_Create_ComputesTotalAndSnapshots(t *testing.T) {
	svc, _, products, book, chess := newOrderFixture(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, ports.CreateOrderInput{
		UserID: "u1",
		Items: []ports.OrderItemInput{
			{ProductID: book.ID, Quantity: 2},
			{ProductID: chess.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	want := 2*29.99 + 15
	if order.Total != want {
		t.Fatalf("expected total %v, got %v", want, order.Total)
	}
	if order.Items[0].Name != "Go in Action" || order.Items[0].UnitPrice != 29.99 {
		t.Fatalf("expected snapshotted name and price: %+v", order.Items[0])
	}

	// Stock is reserved after the order is accepted.
	p, _ := products.FindByID(ctx, book.ID)
	if p.Stock != 8 {
		t.Fatalf("expected stock 8 after order, got %d", p.Stock)
	}
}

func TestOrderService_Create_InsufficientStock(t *testing.T) {
	svc, _, _, _, chess := newOrderFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items:  []ports.OrderItemInput{{ProductID: chess.ID, Quantity: 3}},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	svc, _, _, _, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items:  []ports.OrderItemInput{{ProductID: "missing", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOrderService_Create_RejectsBadQuantity(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "u1",
		Items:  []ports.OrderItemInput{{ProductID: book.ID, Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero quantity, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{UserID: "u1"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty items, got %v", err)
	}
}

func TestOrderService_List_ScopesCustomers(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)
	ctx := context.Background()

	_, _ = svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})
	_, _ = svc.Create(ctx, ports.CreateOrderInput{UserID: "u2", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})

	mine, err := svc.List(ctx, ports.ListOrdersInput{Role: domain.RoleCustomer, UserID: "u1"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "u1" {
		t.Fatalf("expected only u1's orders, got %+v", mine)
	}

	all, err := svc.List(ctx, ports.ListOrdersInput{Role: domain.RoleAdmin, UserID: "admin"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin to see 2 orders, got %d", len(all))
	}
}

func TestOrderService_List_StatusFilter(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)
	ctx := context.Background()

	first, _ := svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})
	_, _ = svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})

	if _, err := svc.UpdateStatus(ctx, first.ID, "completed"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	completed, err := svc.List(ctx, ports.ListOrdersInput{Role: domain.RoleAdmin, Status: "completed"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != first.ID {
		t.Fatalf("expected only the completed order, got %+v", completed)
	}

	if _, err := svc.List(ctx, ports.ListOrdersInput{Role: domain.RoleAdmin, Status: "shipped"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_List_EmptyIsNotNil(t *testing.T) {
	svc, _, _, _, _ := newOrderFixture(t)

	orders, err := svc.List(context.Background(), ports.ListOrdersInput{Role: domain.RoleCustomer, UserID: "nobody"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if orders == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestOrderService_Get_OwnershipHidesOrders(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)
	ctx := context.Background()

	order, _ := svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})

	// The owner and any admin can read it.
	if _, err := svc.Get(ctx, ports.GetOrderInput{ID: order.ID, Role: domain.RoleCustomer, UserID: "u1"}); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := svc.Get(ctx, ports.GetOrderInput{ID: order.ID, Role: domain.RoleAdmin, UserID: "other"}); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}

	// Another customer sees a not-found, not a forbidden.
	if _, err := svc.Get(ctx, ports.GetOrderInput{ID: order.ID, Role: domain.RoleCustomer, UserID: "u2"}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)
	ctx := context.Background()

	order, _ := svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})

	updated, err := svc.UpdateStatus(ctx, order.ID, "processing")
	if err != nil {
		t.Fatalf("pending->processing failed: %v", err)
	}
	if updated.Status != domain.OrderProcessing {
		t.Fatalf("expected processing, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, order.ID, "completed"); err != nil {
		t.Fatalf("processing->completed failed: %v", err)
	}

	// Completed is terminal.
	if _, err := svc.UpdateStatus(ctx, order.ID, "cancelled"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Validation(t *testing.T) {
	svc, _, _, book, _ := newOrderFixture(t)
	ctx := context.Background()

	order, _ := svc.Create(ctx, ports.CreateOrderInput{UserID: "u1", Items: []ports.OrderItemInput{{ProductID: book.ID, Quantity: 1}}})

	if _, err := svc.UpdateStatus(ctx, order.ID, "shipped"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "missing", "completed"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
