package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	cartmodel "bookvault-backend/internal/domains/cart/model"
	"bookvault-backend/internal/domains/order/model"
	"bookvault-backend/internal/domains/order/service"
	"bookvault-backend/internal/shared/middleware"
	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(svc service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: svc}
}

// PlaceOrder handles POST /orders.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, order)
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	orders, err := h.service.GetOrders(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, orders)
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), principal.UserID, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, order)
}

// CancelOrder handles POST /orders/:id/cancel.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), principal.UserID, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, order)
}

func (h *OrderHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, "order not found")
	case errors.Is(err, model.ErrOrderAlreadyCancelled):
		response.BadRequest(c, "order already cancelled")
	case errors.Is(err, cartmodel.ErrCartEmpty):
		response.BadRequest(c, "cart is empty")
	default:
		logger.Error("order handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
