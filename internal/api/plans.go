package api

import (
	"errors"
	"net/http"

	"service-plans-api/internal/models"
	"service-plans-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ListPlans lists every plan descriptor in display order
// GET /api/plans
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.AllPlans(),
	})
}

// GetUserPlanResponse represents the resolved plan response
type GetUserPlanResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Plan    *models.ServicePlan `json:"plan,omitempty"`
}

// GetUserPlan resolves the plan currently enabled for a user
// GET /api/users/:id/plan
// Provisions a default subscription as a side effect when the user has none.
func GetUserPlan(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		return
	}

	planService := services.NewPlanService()
	plan, err := planService.GetCurrentPlanForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, GetUserPlanResponse{
				Success: false,
				Message: "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, GetUserPlanResponse{
			Success: false,
			Message: "Failed to resolve plan: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, GetUserPlanResponse{
		Success: true,
		Plan:    &plan,
	})
}
