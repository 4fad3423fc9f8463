// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	Save(ctx context.Context, tx *gorm.DB, user *model.User) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	return tx.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) Save(ctx context.Context, tx *gorm.DB, user *model.User) error {
	return tx.WithContext(ctx).Save(user).Error
}

func (r *gormUserRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.User{}).Count(&count)
	return count, result.Error
}

func (r *gormUserRepository) List(ctx context.Context, db *gorm.DB) ([]*model.User, error) {
	var users []*model.User
	result := db.WithContext(ctx).Order("username ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
