// internal/repository/settings_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(ctx context.Context, db *gorm.DB) (*model.AppSettings, error)
	Save(ctx context.Context, tx *gorm.DB, settings *model.AppSettings) error
}

type gormSettingsRepository struct{}

func NewGormSettingsRepository() SettingsRepository {
	return &gormSettingsRepository{}
}

func (r *gormSettingsRepository) Get(ctx context.Context, db *gorm.DB) (*model.AppSettings, error) {
	var settings model.AppSettings
	result := db.WithContext(ctx).Where("id = ?", model.SettingsID).First(&settings)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &settings, nil
}

func (r *gormSettingsRepository) Save(ctx context.Context, tx *gorm.DB, settings *model.AppSettings) error {
	settings.ID = model.SettingsID
	return tx.WithContext(ctx).Save(settings).Error
}
