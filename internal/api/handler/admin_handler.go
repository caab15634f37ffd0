package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/core/ports"
)

// AdminHandler serves the dashboard aggregates.
type AdminHandler struct {
	stats ports.StatsService
}

func NewAdminHandler(stats ports.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

type statsResponse struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// Stats handles GET /api/admin/stats. Revenue counts completed orders only.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		TotalProducts: stats.TotalProducts,
		TotalOrders:   stats.TotalOrders,
		TotalUsers:    stats.TotalUsers,
		TotalRevenue:  stats.TotalRevenue,
	})
}
