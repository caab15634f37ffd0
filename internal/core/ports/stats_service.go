package ports

import "context"

// DashboardStats are the aggregate figures shown on the admin dashboard.
// TotalRevenue sums the totals of completed orders only.
type DashboardStats struct {
	TotalProducts int64
	TotalOrders   int64
	TotalUsers    int64
	TotalRevenue  float64
}

// StatsService computes the admin dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
