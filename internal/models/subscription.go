package models

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ServiceSubscription 订阅模型
// 每个用户有且只有一条记录，作为当前套餐状态的唯一来源
type ServiceSubscription struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// 关联字段：与用户一对一
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex"`
	User   User `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	// 订阅属性
	Expires   *time.Time `json:"expires" gorm:"type:date"`              // 到期日期，可为空
	Comment   string     `json:"comment" gorm:"type:text;default:''"`   // 管理员备注
	IsPremium bool       `json:"is_premium" gorm:"default:false;index"` // 是否付费套餐

	// 时间戳
	Created  time.Time `json:"created" gorm:"autoCreateTime"`
	Modified time.Time `json:"modified" gorm:"autoUpdateTime"`
}

// Plan resolves the plan descriptor currently in effect for this subscription.
func (s *ServiceSubscription) Plan() ServicePlan {
	return PlanForTier(s.IsPremium)
}

func (s *ServiceSubscription) String() string {
	return fmt.Sprintf("<ServiceSubscription for user %d: %s>", s.UserID, s.Plan().Name)
}

// AfterSave 每次写入后追加一条历史快照
// Runs after both insert and update, inside GORM's save transaction, so a
// subscription write and its history row commit or roll back together. The
// initial hook-driven creation also writes history; only the one-time backfill
// (which records its own row) runs with hooks disabled.
func (s *ServiceSubscription) AfterSave(tx *gorm.DB) error {
	if lifecycleHooksDisabled(tx) {
		return nil
	}
	return tx.Create(&ServiceSubscriptionHistory{
		SubscriptionID: s.ID,
		Created:        s.Modified,
		Expires:        s.Expires,
		Comment:        s.Comment,
		IsPremium:      s.IsPremium,
	}).Error
}

type skipLifecycleHooksKey struct{}

// SkipLifecycleHooks marks the context so model callbacks become no-ops.
// Used for bulk loads and the backfill migration, which manage subscription
// and history rows explicitly.
func SkipLifecycleHooks(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipLifecycleHooksKey{}, true)
}

func lifecycleHooksDisabled(tx *gorm.DB) bool {
	skip, _ := tx.Statement.Context.Value(skipLifecycleHooksKey{}).(bool)
	return skip
}
