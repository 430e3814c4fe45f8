package api

import (
	"service-plans-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	// API route group
	api := r.Group("/api")
	{
		// Plan descriptors (public, static)
		api.GET("/plans", ListPlans)

		// User account stand-ins (host application hook point)
		users := api.Group("/users")
		{
			users.POST("", CreateUser)
			users.POST("/:id/courses", CreateCourse)
			users.GET("/:id/plan", GetUserPlan)
		}

		// Subscription administration (requires admin key when configured)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/subscriptions", ListSubscriptions)
			admin.PATCH("/subscriptions/:id", UpdateSubscription)
			admin.GET("/subscriptions/:id/history", GetSubscriptionHistory)

			// One-time backfill for users predating this feature
			admin.POST("/backfill", RunBackfill)
			admin.DELETE("/backfill", RollbackBackfill)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "service-plans",
		})
	})
}
