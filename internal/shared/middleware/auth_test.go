package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookvault-backend/pkg/jwt"
)

type stubValidator struct {
	principal *jwt.Principal
	err       error
}

func (s *stubValidator) Validate(token string) (*jwt.Principal, error) {
	return s.principal, s.err
}

func setupRouter(validator jwt.Validator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{Authenticate(validator)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/protected", handlers...)
	return r
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := setupRouter(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := setupRouter(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r := setupRouter(&stubValidator{err: errors.New("bad signature")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	r := setupRouter(&stubValidator{principal: &jwt.Principal{UserID: 1, Role: RoleUser}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	r := setupRouter(
		&stubValidator{principal: &jwt.Principal{UserID: 1, Role: RoleUser}},
		RequireRole(RoleAdmin),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	r := setupRouter(
		&stubValidator{principal: &jwt.Principal{UserID: 1, Role: RoleAdmin}},
		RequireRole(RoleAdmin),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
