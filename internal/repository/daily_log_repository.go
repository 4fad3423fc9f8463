// internal/repository/daily_log_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type DailyLogRepository interface {
	Get(ctx context.Context, db *gorm.DB, username, date string) (*model.DailyLog, error)
	Save(ctx context.Context, tx *gorm.DB, log *model.DailyLog) error
	ListByUser(ctx context.Context, db *gorm.DB, username string) ([]model.DailyLog, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error
}

type gormDailyLogRepository struct{}

func NewGormDailyLogRepository() DailyLogRepository {
	return &gormDailyLogRepository{}
}

func (r *gormDailyLogRepository) Get(ctx context.Context, db *gorm.DB, username, date string) (*model.DailyLog, error) {
	var log model.DailyLog
	result := db.WithContext(ctx).
		Where("username = ? AND date = ?", username, date).
		First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

func (r *gormDailyLogRepository) Save(ctx context.Context, tx *gorm.DB, log *model.DailyLog) error {
	return tx.WithContext(ctx).Save(log).Error
}

func (r *gormDailyLogRepository) ListByUser(ctx context.Context, db *gorm.DB, username string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	result := db.WithContext(ctx).
		Where("username = ?", username).
		Order("date DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

func (r *gormDailyLogRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error {
	return tx.WithContext(ctx).Where("username = ?", username).Delete(&model.DailyLog{}).Error
}
