package middleware

import (
	"net/http"

	"service-plans-api/internal/config"
	"service-plans-api/internal/response"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware protects the administrative endpoints with a shared
// API key. When ADMIN_API_KEY is unset (development), the check is skipped.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AdminAPIKey
		if expected == "" {
			c.Next()
			return
		}

		// Get admin key from header
		key := c.GetHeader("X-Admin-Key")

		// If not passed via header, try to get from query parameters
		if key == "" {
			key = c.Query("admin_key")
		}

		if key != expected {
			response.ErrorJSON(c, http.StatusUnauthorized, "Invalid admin key")
			c.Abort()
			return
		}

		c.Next()
	}
}
