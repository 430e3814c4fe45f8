package api

import (
	"net/http"

	"service-plans-api/internal/database"

	"github.com/gin-gonic/gin"
)

// RunBackfill provisions subscriptions for users predating this feature
// POST /api/admin/backfill
// Creates a subscription plus exactly one history row per user that has none,
// bypassing the live lifecycle hooks. Safe to re-run: already provisioned
// users are skipped.
func RunBackfill(c *gin.Context) {
	created, err := database.BackfillSubscriptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Backfill failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"created": created},
	})
}

// RollbackBackfill reverses the backfill
// DELETE /api/admin/backfill
// Deletes all subscriptions; history rows cascade with them.
func RollbackBackfill(c *gin.Context) {
	deleted, err := database.RollbackBackfill(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Backfill rollback failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": deleted},
	})
}
