package models

import (
	"time"

	"gorm.io/gorm"
)

// User 宿主应用的用户账号（最小化镜像）
// Minimal stand-in for the host application's account record. Only the fields
// the subscription slice needs (identity, email for the admin list) live here.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:254;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Course 用户拥有的课程（仅用于管理列表的计数列）
type Course struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	OwnerID uint   `json:"owner_id" gorm:"not null;index"`
	Owner   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title   string `json:"title" gorm:"size:255;not null"`
}

// AfterCreate 用户创建后自动开通默认订阅
// Provisions a default service subscription for every newly created account.
// Suppressed for bulk/fixture loads via SkipLifecycleHooks, matching the way
// raw imports must not trigger provisioning.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if lifecycleHooksDisabled(tx) {
		return nil
	}
	return tx.Create(&ServiceSubscription{UserID: u.ID}).Error
}
