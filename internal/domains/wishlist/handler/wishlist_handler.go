package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	bookmodel "bookvault-backend/internal/domains/book/model"
	"bookvault-backend/internal/domains/wishlist/model"
	"bookvault-backend/internal/domains/wishlist/service"
	"bookvault-backend/internal/shared/middleware"
	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

type WishlistHandler struct {
	service service.ServiceInterface
}

func NewWishlistHandler(svc service.ServiceInterface) *WishlistHandler {
	return &WishlistHandler{service: svc}
}

// AddToWishlist handles POST /wishlist.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.service.AddToWishlist(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, item)
}

// GetWishlist handles GET /wishlist.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.service.GetWishlist(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, items)
}

// RemoveFromWishlist handles DELETE /wishlist/:id.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid wishlist item id")
		return
	}

	if err := h.service.RemoveFromWishlist(c.Request.Context(), principal.UserID, itemID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}

func (h *WishlistHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrAlreadyInWishList):
		response.BadRequest(c, "book already in wishlist")
	case errors.Is(err, model.ErrWishlistItemNotFound):
		response.NotFound(c, "wishlist item not found")
	case errors.Is(err, bookmodel.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, validationErrs.Error())
	default:
		logger.Error("wishlist handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
