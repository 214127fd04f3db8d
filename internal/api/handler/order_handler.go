package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// OrderHandler serves orders plus the transporter projections (deliveries
// and the available-job pool).
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	EnquiryID     int64 `json:"enquiry_id" validate:"required"`
	TransporterID int64 `json:"transporter_id"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=requested picked in_transit delivered"`
}

type orderListResponse struct {
	Orders []domain.Order `json:"orders"`
	Count  int            `json:"count"`
}

// List handles GET /orders.
//
// @Summary      List orders visible to the session
// @Tags         orders
// @Produce      json
// @Success      200  {object}  orderListResponse
// @Failure      401  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: orders, Count: len(orders)})
}

// Create handles POST /orders (buyer), from an accepted enquiry.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fresh, err := h.orders.CreateOrder(c.Request().Context(), ctxSession(c), ports.CreateOrderInput{
		EnquiryID:     req.EnquiryID,
		TransporterID: req.TransporterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderListResponse{Orders: fresh, Count: len(fresh)})
}

// UpdateStatus handles PUT /orders/:id/status (transporter). Only the next
// monotonic step is accepted.
//
// @Summary      Advance an order's delivery status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Order ID"
// @Param        body  body      updateStatusRequest  true  "Next status"
// @Success      200   {object}  orderListResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fresh, err := h.orders.UpdateStatus(c.Request().Context(), ctxSession(c), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: fresh, Count: len(fresh)})
}

// Deliveries handles GET /deliveries (transporter).
//
// @Summary      List this transporter's assigned deliveries
// @Tags         orders
// @Produce      json
// @Success      200  {object}  orderListResponse
// @Failure      403  {object}  map[string]string
// @Router       /deliveries [get]
func (h *OrderHandler) Deliveries(c echo.Context) error {
	deliveries, err := h.orders.ListDeliveries(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: deliveries, Count: len(deliveries)})
}

// Jobs handles GET /jobs (transporter).
//
// @Summary      List unassigned delivery jobs
// @Tags         orders
// @Produce      json
// @Success      200  {object}  orderListResponse
// @Failure      403  {object}  map[string]string
// @Router       /jobs [get]
func (h *OrderHandler) Jobs(c echo.Context) error {
	jobs, err := h.orders.ListJobs(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: jobs, Count: len(jobs)})
}

