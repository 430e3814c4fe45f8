package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service-plans-api/internal/database"
	"service-plans-api/internal/models"
	"service-plans-api/pkg/logging"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrSubscriptionNotFound 订阅不存在
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// PlanService 套餐读取与订阅管理服务
type PlanService struct {
	db    *gorm.DB
	cache *PlanCache
}

// NewPlanService creates a new plan service
func NewPlanService() *PlanService {
	return &PlanService{
		db:    database.GetDB(),
		cache: NewPlanCache(),
	}
}

// GetCurrentPlanForUser 获取用户当前生效的套餐
// Recommended way of resolving the plan currently enabled for a user. Lazily
// provisions a default subscription if the user has none yet.
func (s *PlanService) GetCurrentPlanForUser(ctx context.Context, userID uint) (models.ServicePlan, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ServicePlan{}, ErrUserNotFound
		}
		return models.ServicePlan{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if plan, ok := s.cache.Get(ctx, user.ID); ok {
		return plan, nil
	}

	subscription, err := s.getOrCreateSubscription(ctx, user.ID)
	if err != nil {
		return models.ServicePlan{}, err
	}

	plan := subscription.Plan()
	s.cache.Set(ctx, user.ID, plan)
	return plan, nil
}

// getOrCreateSubscription 原子化的查找或创建
// Create-then-retry on the user_id unique index: two concurrent callers for
// the same new user never end up with two subscriptions, the loser of the
// race re-fetches the winner's row.
func (s *PlanService) getOrCreateSubscription(ctx context.Context, userID uint) (*models.ServiceSubscription, error) {
	var subscription models.ServiceSubscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&subscription).Error
	if err == nil {
		return &subscription, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	subscription = models.ServiceSubscription{UserID: userID}
	err = s.db.WithContext(ctx).Create(&subscription).Error
	if err == nil {
		return &subscription, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the provisioning race, another caller created it first
		logging.Infof("Subscription for user %d already exists, fetching it", userID)
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&subscription).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch subscription after conflict: %w", err)
		}
		return &subscription, nil
	}
	return nil, fmt.Errorf("failed to create subscription: %w", err)
}

// SubscriptionUpdate 管理端可编辑的订阅字段，nil 表示不修改
type SubscriptionUpdate struct {
	IsPremium    *bool
	Comment      *string
	Expires      *time.Time
	ClearExpires bool // 清空到期日期
}

// UpdateSubscription 管理端编辑订阅（is_premium / comment / expires）
// Every successful save appends a history snapshot via the model callback.
func (s *PlanService) UpdateSubscription(ctx context.Context, id uint, update SubscriptionUpdate) (*models.ServiceSubscription, error) {
	var subscription models.ServiceSubscription
	if err := s.db.WithContext(ctx).First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	if update.IsPremium != nil {
		subscription.IsPremium = *update.IsPremium
	}
	if update.Comment != nil {
		subscription.Comment = *update.Comment
	}
	if update.ClearExpires {
		subscription.Expires = nil
	} else if update.Expires != nil {
		subscription.Expires = update.Expires
	}

	if err := s.db.WithContext(ctx).Save(&subscription).Error; err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	s.cache.Invalidate(ctx, subscription.UserID)
	return &subscription, nil
}
