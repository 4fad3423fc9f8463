// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	GetSession(ctx context.Context, db *gorm.DB, username, sessionType string) (*model.SessionProgress, error)
	SaveSession(ctx context.Context, tx *gorm.DB, progress *model.SessionProgress) error
	ListSessions(ctx context.Context, db *gorm.DB, username string) ([]*model.SessionProgress, error)
	GetUserProgress(ctx context.Context, db *gorm.DB, username string) (*model.UserProgress, error)
	SaveUserProgress(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	DeleteAllForUser(ctx context.Context, tx *gorm.DB, username string) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) GetSession(ctx context.Context, db *gorm.DB, username, sessionType string) (*model.SessionProgress, error) {
	var progress model.SessionProgress
	result := db.WithContext(ctx).
		Where("username = ? AND session_type = ?", username, sessionType).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &progress, nil
}

func (r *gormProgressRepository) SaveSession(ctx context.Context, tx *gorm.DB, progress *model.SessionProgress) error {
	return tx.WithContext(ctx).Save(progress).Error
}

func (r *gormProgressRepository) ListSessions(ctx context.Context, db *gorm.DB, username string) ([]*model.SessionProgress, error) {
	var progresses []*model.SessionProgress
	result := db.WithContext(ctx).Where("username = ?", username).Find(&progresses)
	if result.Error != nil {
		return nil, result.Error
	}
	return progresses, nil
}

func (r *gormProgressRepository) GetUserProgress(ctx context.Context, db *gorm.DB, username string) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("username = ?", username).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &progress, nil
}

func (r *gormProgressRepository) SaveUserProgress(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	return tx.WithContext(ctx).Save(progress).Error
}

func (r *gormProgressRepository) DeleteAllForUser(ctx context.Context, tx *gorm.DB, username string) error {
	if err := tx.WithContext(ctx).Where("username = ?", username).Delete(&model.SessionProgress{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("username = ?", username).Delete(&model.UserProgress{}).Error
}
