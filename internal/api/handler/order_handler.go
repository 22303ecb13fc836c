package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/romulogoncalves94/help-desk/internal/api/metrics"
	"github.com/romulogoncalves94/help-desk/internal/core/domain"
	"github.com/romulogoncalves94/help-desk/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  createOrderRequest  true  "Order details"
// @Success      201
// @Failure      400  {object}  api.standardError
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		RequesterID: req.RequesterID,
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Status)).Inc()

	return c.NoContent(http.StatusCreated)
}

// FindByID handles GET /api/orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  api.standardError
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) FindByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	order, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// FindAll handles GET /api/orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) FindAll(c echo.Context) error {
	orders, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return c.JSON(http.StatusOK, out)
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		RequesterID: o.RequesterID,
		CustomerID:  o.CustomerID,
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC(),
		ClosedAt:    o.ClosedAt,
	}
}
