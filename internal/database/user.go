package database

import (
	"context"

	"service-plans-api/internal/models"
)

// CreateUser 创建用户（触发订阅自动开通钩子）
func CreateUser(ctx context.Context, user *models.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

// GetUserByID 通过ID获取用户
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCourse 创建用户拥有的课程
func CreateCourse(ctx context.Context, course *models.Course) error {
	return DB.WithContext(ctx).Create(course).Error
}
