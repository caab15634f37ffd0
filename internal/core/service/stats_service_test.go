package service

import (
	"context"
	"testing"

	"github.com/shoplite/storefront/internal/core/domain"
)

func TestStatsService_Dashboard(t *testing.T) {
	products := newMemProductRepo()
	orders := newMemOrderRepo()
	users := newMemUserRepo()
	svc := NewStatsService(products, orders, users)
	ctx := context.Background()

	_, _ = products.Create(ctx, &domain.Product{Name: "Go in Action", Price: 29.99, Stock: 5})
	_, _ = products.Create(ctx, &domain.Product{Name: "Chess Set", Price: 15, Stock: 3})
	_, _ = users.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com"})

	// Revenue counts completed orders only.
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 100, Status: domain.OrderCompleted})
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 50, Status: domain.OrderCompleted})
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 999, Status: domain.OrderPending})
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 999, Status: domain.OrderCancelled})

	stats, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", stats.TotalProducts)
	}
	if stats.TotalOrders != 4 {
		t.Errorf("expected 4 orders, got %d", stats.TotalOrders)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("expected 1 user, got %d", stats.TotalUsers)
	}
	if stats.TotalRevenue != 150 {
		t.Errorf("expected revenue 150, got %v", stats.TotalRevenue)
	}
}

func TestStatsService_Dashboard_Empty(t *testing.T) {
	svc := NewStatsService(newMemProductRepo(), newMemOrderRepo(), newMemUserRepo())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.TotalProducts != 0 || stats.TotalOrders != 0 || stats.TotalUsers != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("expected all zeros, got %+v", stats)
	}
}
