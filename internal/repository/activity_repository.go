// internal/repository/activity_repository.go
package repository

import (
	"context"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Append(ctx context.Context, tx *gorm.DB, entry *model.ActivityEntry) error
	ListByUser(ctx context.Context, db *gorm.DB, username string, limit int) ([]model.ActivityEntry, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error
}

type gormActivityRepository struct{}

func NewGormActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

func (r *gormActivityRepository) Append(ctx context.Context, tx *gorm.DB, entry *model.ActivityEntry) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *gormActivityRepository) ListByUser(ctx context.Context, db *gorm.DB, username string, limit int) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	result := db.WithContext(ctx).
		Where("username = ?", username).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *gormActivityRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error {
	return tx.WithContext(ctx).Where("username = ?", username).Delete(&model.ActivityEntry{}).Error
}
