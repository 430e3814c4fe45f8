package database

import (
	"context"

	"service-plans-api/internal/models"

	"gorm.io/gorm"
)

// SubscriptionListRow 管理列表行：订阅 + 所属用户信息 + 课程数
// One row of the admin changelist: the subscription joined with its owner and
// the annotated owned-course count.
type SubscriptionListRow struct {
	models.ServiceSubscription
	Username     string `json:"username"`
	Email        string `json:"email"`
	CoursesCount int64  `json:"courses_count"`
}

// ListSubscriptionsOptions 管理列表的过滤/搜索/分页参数
type ListSubscriptionsOptions struct {
	IsPremium *bool  // filter by premium flag when set
	Search    string // matches username or email, substring
	Page      int    // 1-based
	PageSize  int
}

// ListSubscriptions 订阅管理列表（按用户名/邮箱搜索，按套餐过滤，分页）
func ListSubscriptions(opts ListSubscriptionsOptions) ([]SubscriptionListRow, int64, error) {
	query := DB.Model(&models.ServiceSubscription{}).
		Joins(`JOIN "user" ON "user".id = service_subscription.user_id`)

	if opts.IsPremium != nil {
		query = query.Where("service_subscription.is_premium = ?", *opts.IsPremium)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(`"user".username LIKE ? OR "user".email LIKE ?`, pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.Page < 1 {
		opts.Page = 1
	}

	var rows []SubscriptionListRow
	err := query.
		Select(`service_subscription.*, "user".username AS username, "user".email AS email,` +
			` (SELECT COUNT(*) FROM course WHERE course.owner_id = service_subscription.user_id) AS courses_count`).
		Order("service_subscription.id").
		Limit(opts.PageSize).
		Offset((opts.Page - 1) * opts.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetSubscriptionByID 通过ID获取订阅
func GetSubscriptionByID(id uint) (*models.ServiceSubscription, error) {
	var subscription models.ServiceSubscription
	if err := DB.First(&subscription, id).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// GetSubscriptionByUserID 获取用户的订阅（一对一）
func GetSubscriptionByUserID(userID uint) (*models.ServiceSubscription, error) {
	var subscription models.ServiceSubscription
	if err := DB.Where("user_id = ?", userID).First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// SaveSubscription 保存订阅（触发历史快照钩子）
func SaveSubscription(ctx context.Context, subscription *models.ServiceSubscription) error {
	return DB.WithContext(ctx).Save(subscription).Error
}

// GetSubscriptionHistory 获取订阅历史，最新在前
func GetSubscriptionHistory(subscriptionID uint) ([]models.ServiceSubscriptionHistory, error) {
	var history []models.ServiceSubscriptionHistory
	err := DB.Where("subscription_id = ?", subscriptionID).
		Order("created DESC, id DESC").
		Find(&history).Error
	return history, err
}

// GetLatestSubscriptionHistory 获取订阅的最新一条历史
func GetLatestSubscriptionHistory(subscriptionID uint) (*models.ServiceSubscriptionHistory, error) {
	var entry models.ServiceSubscriptionHistory
	err := DB.Where("subscription_id = ?", subscriptionID).
		Order("created DESC, id DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountSubscriptionHistory 统计订阅的历史条数
func CountSubscriptionHistory(subscriptionID uint) (int64, error) {
	var count int64
	err := DB.Model(&models.ServiceSubscriptionHistory{}).
		Where("subscription_id = ?", subscriptionID).
		Count(&count).Error
	return count, err
}
