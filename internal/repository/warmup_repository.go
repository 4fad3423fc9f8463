// internal/repository/warmup_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type WarmupRepository interface {
	Get(ctx context.Context, db *gorm.DB, username, date string) (*model.WarmupRecord, error)
	Save(ctx context.Context, tx *gorm.DB, record *model.WarmupRecord) error
	ListByUser(ctx context.Context, db *gorm.DB, username string) ([]model.WarmupRecord, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error
}

type gormWarmupRepository struct{}

func NewGormWarmupRepository() WarmupRepository {
	return &gormWarmupRepository{}
}

func (r *gormWarmupRepository) Get(ctx context.Context, db *gorm.DB, username, date string) (*model.WarmupRecord, error) {
	var record model.WarmupRecord
	result := db.WithContext(ctx).
		Where("username = ? AND date = ?", username, date).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}

func (r *gormWarmupRepository) Save(ctx context.Context, tx *gorm.DB, record *model.WarmupRecord) error {
	return tx.WithContext(ctx).Save(record).Error
}

func (r *gormWarmupRepository) ListByUser(ctx context.Context, db *gorm.DB, username string) ([]model.WarmupRecord, error) {
	var records []model.WarmupRecord
	result := db.WithContext(ctx).
		Where("username = ?", username).
		Order("date ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *gormWarmupRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, username string) error {
	return tx.WithContext(ctx).Where("username = ?", username).Delete(&model.WarmupRecord{}).Error
}
