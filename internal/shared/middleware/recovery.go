package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"bookvault-backend/internal/shared/response"
	"bookvault-backend/pkg/logger"
)

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", r))
				logger.Warn("panic stack trace", map[string]interface{}{
					"request_id": c.GetString(RequestIDKey),
					"stack":      string(debug.Stack()),
				})

				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
