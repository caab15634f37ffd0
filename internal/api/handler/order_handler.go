package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/api/metrics"
	"github.com/shoplite/storefront/internal/core/ports"
)

// OrderHandler handles checkout and order retrieval. Ownership scoping is
// enforced in the service from the session identity; this layer only maps
// HTTP to inputs.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/orders. Prices and totals are computed
// server-side from the catalog.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order line items"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders. Admins see every order, customers only their
// own. An optional ?status= query narrows the result.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Order
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.List(c.Request().Context(), ports.ListOrdersInput{
		Role:   role,
		UserID: userID,
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id. Customers asking for someone else's order
// get a not-found, never a hint the order exists.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Request().Context(), ports.GetOrderInput{
		ID:     c.Param("id"),
		Role:   role,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/:id (admin). Only forward transitions
// along the fulfillment graph are accepted.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(req.Status).Inc()

	return c.JSON(http.StatusOK, order)
}
