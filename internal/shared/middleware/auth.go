package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/jwt"
)

const (
	// PrincipalKey is the gin context key holding the authenticated principal.
	PrincipalKey = "principal"

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Authenticate extracts the bearer token, validates it and stores the
// principal in the request context. Requests without a valid token are
// rejected before reaching any handler.
func Authenticate(validator jwt.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		principal, err := validator.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose principal does not
// carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || principal.Role != role {
			response.Unauthorized(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil when the
// request did not pass Authenticate.
func GetPrincipal(c *gin.Context) *jwt.Principal {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*jwt.Principal)
	if !ok {
		return nil
	}
	return principal
}
