package services

import (
	"context"
	"fmt"
	"time"

	"service-plans-api/internal/config"
	"service-plans-api/internal/database"
	"service-plans-api/internal/models"
	"service-plans-api/pkg/logging"

	"github.com/redis/go-redis/v9"
)

// PlanCache 用户当前套餐的 Redis 缓存
// Caches the resolved tier per user with a short TTL; every subscription write
// invalidates the entry. Degrades to a no-op when Redis is not configured.
type PlanCache struct {
	enabled bool
	ttl     time.Duration
}

// NewPlanCache creates a plan cache backed by the shared Redis client.
func NewPlanCache() *PlanCache {
	return &PlanCache{
		enabled: database.GetRedis() != nil,
		ttl:     time.Duration(config.AppConfig.PlanCacheMinutes) * time.Minute,
	}
}

func planCacheKey(userID uint) string {
	return fmt.Sprintf("service_plan:user:%d", userID)
}

// Get returns the cached plan for a user, if present.
func (c *PlanCache) Get(ctx context.Context, userID uint) (models.ServicePlan, bool) {
	if !c.enabled {
		return models.ServicePlan{}, false
	}

	tier, err := database.GetCache(ctx, planCacheKey(userID))
	if err != nil {
		if err != redis.Nil {
			logging.Errorf("Plan cache read failed for user %d: %v", userID, err)
		}
		return models.ServicePlan{}, false
	}
	return models.PlanForTier(tier == "premium"), true
}

// Set caches the resolved plan for a user.
func (c *PlanCache) Set(ctx context.Context, userID uint, plan models.ServicePlan) {
	if !c.enabled {
		return
	}

	tier := "basic"
	if !plan.IsDefault {
		tier = "premium"
	}
	if err := database.SetCache(ctx, planCacheKey(userID), tier, c.ttl); err != nil {
		logging.Errorf("Plan cache write failed for user %d: %v", userID, err)
	}
}

// Invalidate drops the cached plan for a user after a subscription write.
func (c *PlanCache) Invalidate(ctx context.Context, userID uint) {
	if !c.enabled {
		return
	}
	if err := database.DeleteCache(ctx, planCacheKey(userID)); err != nil {
		logging.Errorf("Plan cache invalidation failed for user %d: %v", userID, err)
	}
}
