// internal/repository/catalog_repository.go
package repository

import (
	"context"
	"errors"

	"violin_study_plan/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository persists the user-created extension of the seed catalog:
// custom methods and their lessons.
type CatalogRepository interface {
	CreateMethod(ctx context.Context, tx *gorm.DB, method *model.CustomMethod) error
	FindMethod(ctx context.Context, db *gorm.DB, id string) (*model.CustomMethod, error)
	SaveMethod(ctx context.Context, tx *gorm.DB, method *model.CustomMethod) error
	DeleteMethod(ctx context.Context, tx *gorm.DB, id string) error
	ListMethods(ctx context.Context, db *gorm.DB) ([]model.CustomMethod, error)
	ListMethodsBySession(ctx context.Context, db *gorm.DB, sessionType string) ([]model.CustomMethod, error)

	CreateLessons(ctx context.Context, tx *gorm.DB, lessons []model.CustomLesson) error
	FindLesson(ctx context.Context, db *gorm.DB, id string) (*model.CustomLesson, error)
	SaveLesson(ctx context.Context, tx *gorm.DB, lesson *model.CustomLesson) error
	DeleteLesson(ctx context.Context, tx *gorm.DB, id string) error
	ListLessonsByMethod(ctx context.Context, db *gorm.DB, methodID string) ([]model.CustomLesson, error)
	ListLessonsBySession(ctx context.Context, db *gorm.DB, sessionType string) ([]model.CustomLesson, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) CreateMethod(ctx context.Context, tx *gorm.DB, method *model.CustomMethod) error {
	return tx.WithContext(ctx).Create(method).Error
}

func (r *gormCatalogRepository) FindMethod(ctx context.Context, db *gorm.DB, id string) (*model.CustomMethod, error) {
	var method model.CustomMethod
	result := db.WithContext(ctx).Where("id = ?", id).First(&method)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &method, nil
}

func (r *gormCatalogRepository) SaveMethod(ctx context.Context, tx *gorm.DB, method *model.CustomMethod) error {
	return tx.WithContext(ctx).Save(method).Error
}

// DeleteMethod removes the method and every lesson that belongs to it.
func (r *gormCatalogRepository) DeleteMethod(ctx context.Context, tx *gorm.DB, id string) error {
	if err := tx.WithContext(ctx).Where("custom_method_id = ?", id).Delete(&model.CustomLesson{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomMethod{}).Error
}

func (r *gormCatalogRepository) ListMethods(ctx context.Context, db *gorm.DB) ([]model.CustomMethod, error) {
	var methods []model.CustomMethod
	result := db.WithContext(ctx).Order("created_at ASC").Find(&methods)
	if result.Error != nil {
		return nil, result.Error
	}
	return methods, nil
}

func (r *gormCatalogRepository) ListMethodsBySession(ctx context.Context, db *gorm.DB, sessionType string) ([]model.CustomMethod, error) {
	var methods []model.CustomMethod
	result := db.WithContext(ctx).
		Where("session_type = ?", sessionType).
		Order("created_at ASC").
		Find(&methods)
	if result.Error != nil {
		return nil, result.Error
	}
	return methods, nil
}

func (r *gormCatalogRepository) CreateLessons(ctx context.Context, tx *gorm.DB, lessons []model.CustomLesson) error {
	if len(lessons) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&lessons).Error
}

func (r *gormCatalogRepository) FindLesson(ctx context.Context, db *gorm.DB, id string) (*model.CustomLesson, error) {
	var lesson model.CustomLesson
	result := db.WithContext(ctx).Where("id = ?", id).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &lesson, nil
}

func (r *gormCatalogRepository) SaveLesson(ctx context.Context, tx *gorm.DB, lesson *model.CustomLesson) error {
	return tx.WithContext(ctx).Save(lesson).Error
}

func (r *gormCatalogRepository) DeleteLesson(ctx context.Context, tx *gorm.DB, id string) error {
	return tx.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomLesson{}).Error
}

func (r *gormCatalogRepository) ListLessonsByMethod(ctx context.Context, db *gorm.DB, methodID string) ([]model.CustomLesson, error) {
	var lessons []model.CustomLesson
	result := db.WithContext(ctx).
		Where("custom_method_id = ?", methodID).
		Order("lesson_order ASC").
		Find(&lessons)
	if result.Error != nil {
		return nil, result.Error
	}
	return lessons, nil
}

func (r *gormCatalogRepository) ListLessonsBySession(ctx context.Context, db *gorm.DB, sessionType string) ([]model.CustomLesson, error) {
	var lessons []model.CustomLesson
	result := db.WithContext(ctx).
		Where("session_type = ?", sessionType).
		Order("created_at ASC, lesson_order ASC").
		Find(&lessons)
	if result.Error != nil {
		return nil, result.Error
	}
	return lessons, nil
}
