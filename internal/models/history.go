package models

import "time"

// ServiceSubscriptionHistory 订阅变更历史（只追加，不修改）
// One row per subscription write, copied from the subscription at that moment.
type ServiceSubscriptionHistory struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// 所属订阅
	SubscriptionID uint                `json:"subscription_id" gorm:"not null;index"`
	Subscription   ServiceSubscription `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	// 从订阅复制的字段
	Expires   *time.Time `json:"expires" gorm:"type:date"`
	Comment   string     `json:"comment" gorm:"type:text"`
	IsPremium bool       `json:"is_premium"`

	// 取自订阅当时的 modified 时间戳，不是行插入时间
	Created time.Time `json:"created" gorm:"index"`
}
