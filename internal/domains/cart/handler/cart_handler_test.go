package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookvault-backend/internal/domains/cart/model"
	"bookvault-backend/internal/domains/cart/service"
	"bookvault-backend/internal/shared/middleware"
	"bookvault-backend/pkg/jwt"
)

type stubCartService struct {
	items []model.CartItem
}

var _ service.ServiceInterface = (*stubCartService)(nil)

func (s *stubCartService) AddToCart(ctx context.Context, userID int64, req *model.AddToCartRequest) (*model.CartItem, error) {
	return &model.CartItem{ID: 1, UserID: userID, BookID: req.BookID, Quantity: req.Quantity}, nil
}

func (s *stubCartService) GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if len(s.items) == 0 {
		return nil, model.ErrCartEmpty
	}
	return s.items, nil
}

func (s *stubCartService) RemoveFromCart(ctx context.Context, userID, itemID int64) error {
	return nil
}

func (s *stubCartService) ClearCart(ctx context.Context, userID int64) error {
	if len(s.items) == 0 {
		return model.ErrCartEmpty
	}
	s.items = nil
	return nil
}

func cartRouter(svc service.ServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, &jwt.Principal{UserID: 100, Role: middleware.RoleUser})
	})

	h := NewCartHandler(svc)
	r.GET("/cart/items", h.GetCartItems)
	r.DELETE("/cart/items", h.ClearCart)
	return r
}

func TestGetCartItemsEmptyIsNoContent(t *testing.T) {
	r := cartRouter(&stubCartService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart/items", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearCartEmptyIsNotFound(t *testing.T) {
	r := cartRouter(&stubCartService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartWithItems(t *testing.T) {
	r := cartRouter(&stubCartService{items: []model.CartItem{{ID: 1, UserID: 100, BookID: 1, Quantity: 2}}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
