package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookvault-backend/internal/domains/cart/model"
	"bookvault-backend/internal/domains/cart/service"
	"bookvault-backend/internal/domains/inventory"
	"bookvault-backend/internal/shared/middleware"
	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(svc service.ServiceInterface) *CartHandler {
	return &CartHandler{service: svc}
}

// AddToCart handles POST /cart/items.
func (h *CartHandler) AddToCart(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.service.AddToCart(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, item)
}

// GetCartItems handles GET /cart/items.
func (h *CartHandler) GetCartItems(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.service.GetCartItems(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, items)
}

// RemoveFromCart handles DELETE /cart/items/:id.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.service.RemoveFromCart(c.Request.Context(), principal.UserID, itemID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}

// ClearCart handles DELETE /cart/items.
func (h *CartHandler) ClearCart(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), principal.UserID); err != nil {
		// An empty cart has nothing to clear; unlike the read path this
		// is reported as not found.
		if errors.Is(err, model.ErrCartEmpty) {
			response.NotFound(c, "cart is empty")
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}

func (h *CartHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrCartEmpty):
		response.NoContent(c)
	case errors.Is(err, model.ErrCartItemNotFound):
		response.NotFound(c, "cart item not found")
	case errors.Is(err, inventory.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, inventory.ErrInsufficientStock):
		response.BadRequest(c, "insufficient stock")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		response.BadRequest(c, "quantity must be positive")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, validationErrs.Error())
	default:
		logger.Error("cart handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
