package database

import (
	"context"
	"fmt"

	"service-plans-api/internal/models"
	"service-plans-api/pkg/logging"

	"gorm.io/gorm"
)

// BackfillSubscriptions 为本功能上线前已存在的用户补建订阅
// One-time data migration: every user without a subscription gets one with
// default values plus a single matching history row, written explicitly with
// the lifecycle hooks disabled (the live creation hook does not apply to
// backfilled rows). Returns the number of subscriptions created.
func BackfillSubscriptions(ctx context.Context) (int, error) {
	ctx = models.SkipLifecycleHooks(ctx)

	created := 0
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.
			Where("id NOT IN (?)", tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.ServiceSubscription{}).Select("user_id")).
			Find(&users).Error; err != nil {
			return fmt.Errorf("failed to list users without subscription: %w", err)
		}

		for i := range users {
			subscription := models.ServiceSubscription{UserID: users[i].ID}
			if err := tx.Create(&subscription).Error; err != nil {
				return fmt.Errorf("failed to create subscription for user %d: %w", users[i].ID, err)
			}
			entry := models.ServiceSubscriptionHistory{
				SubscriptionID: subscription.ID,
				Created:        subscription.Modified,
				Expires:        subscription.Expires,
				Comment:        subscription.Comment,
				IsPremium:      subscription.IsPremium,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create history for subscription %d: %w", subscription.ID, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logging.Infof("Backfill created %d subscriptions", created)
	return created, nil
}

// RollbackBackfill 回滚补建：删除所有订阅，历史由外键级联删除
func RollbackBackfill(ctx context.Context) (int64, error) {
	result := DB.WithContext(models.SkipLifecycleHooks(ctx)).
		Where("1 = 1").
		Delete(&models.ServiceSubscription{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete subscriptions: %w", result.Error)
	}

	logging.Infof("Backfill rollback deleted %d subscriptions", result.RowsAffected)
	return result.RowsAffected, nil
}
