package service

import (
	"context"

	"github.com/shoplite/storefront/internal/core/ports"
)

// StatsService computes the admin dashboard aggregates.
type StatsService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	users    ports.UserRepository
}

func NewStatsService(products ports.ProductRepository, orders ports.OrderRepository, users ports.UserRepository) *StatsService {
	return &StatsService{products: products, orders: orders, users: users}
}

func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.orders.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalUsers:    totalUsers,
		TotalRevenue:  totalRevenue,
	}, nil
}
