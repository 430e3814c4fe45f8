package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"service-plans-api/internal/config"
	"service-plans-api/internal/database"
	"service-plans-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ListSubscriptions lists subscriptions for the admin changelist
// GET /api/admin/subscriptions?is_premium=true&q=alice&page=1
// Each row carries the owning user, email, and the owned-course count.
func ListSubscriptions(c *gin.Context) {
	opts := database.ListSubscriptionsOptions{
		Search:   c.Query("q"),
		PageSize: config.AppConfig.AdminPageSize,
	}

	if raw := c.Query("is_premium"); raw != "" {
		isPremium, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid is_premium filter",
			})
			return
		}
		opts.IsPremium = &isPremium
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid page parameter",
			})
			return
		}
		opts.Page = page
	}

	rows, total, err := database.ListSubscriptions(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to list subscriptions: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      rows,
		"total":     total,
		"page":      max(opts.Page, 1),
		"page_size": opts.PageSize,
	})
}

// UpdateSubscriptionRequest represents the inline-editable subscription fields.
// Omitted fields are left unchanged; an empty expires string clears the date.
type UpdateSubscriptionRequest struct {
	IsPremium *bool   `json:"is_premium"`
	Comment   *string `json:"comment"`
	Expires   *string `json:"expires"` // date in 2006-01-02 format
}

// UpdateSubscription edits a subscription from the admin changelist
// PATCH /api/admin/subscriptions/:id
// Every successful edit appends a history snapshot.
func UpdateSubscription(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	update := services.SubscriptionUpdate{
		IsPremium: req.IsPremium,
		Comment:   req.Comment,
	}
	if req.Expires != nil {
		if *req.Expires == "" {
			update.ClearExpires = true
		} else {
			expires, err := time.Parse("2006-01-02", *req.Expires)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Invalid expires date, expected YYYY-MM-DD",
				})
				return
			}
			update.Expires = &expires
		}
	}

	planService := services.NewPlanService()
	subscription, err := planService.UpdateSubscription(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Subscription not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update subscription: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subscription,
	})
}

// SubscriptionHistoryItem represents one read-only history row
type SubscriptionHistoryItem struct {
	ID        uint       `json:"id"`
	Created   time.Time  `json:"created"`
	IsPremium bool       `json:"is_premium"`
	Comment   string     `json:"comment"`
	Expires   *time.Time `json:"expires,omitempty"`
}

// GetSubscriptionHistory lists a subscription's history, most recent first
// GET /api/admin/subscriptions/:id/history
// Read-only: history rows cannot be added or deleted through the admin API.
func GetSubscriptionHistory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if _, err := database.GetSubscriptionByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Subscription not found",
		})
		return
	}

	history, err := database.GetSubscriptionHistory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get subscription history: " + err.Error(),
		})
		return
	}

	items := make([]SubscriptionHistoryItem, len(history))
	for i, entry := range history {
		items[i] = SubscriptionHistoryItem{
			ID:        entry.ID,
			Created:   entry.Created,
			IsPremium: entry.IsPremium,
			Comment:   entry.Comment,
			Expires:   entry.Expires,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}
