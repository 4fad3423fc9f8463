// internal/service/method_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"violin_study_plan/internal/catalog"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateMethodResponse struct {
	Message string             `json:"message"`
	Method  catalog.MethodView `json:"method"`
}

type CreateLessonResponse struct {
	Message string           `json:"message"`
	Lesson  CreatedLessonRef `json:"lesson"`
}

type CreatedLessonRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type BatchLessonResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// MethodLessonView lists a lesson of one method. Seed lessons carry their
// numeric id, custom lessons their UUID, hence the untyped ID.
type MethodLessonView struct {
	ID          any      `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Instruction string   `json:"instruction"`
	Level       string   `json:"level"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order,omitempty"`
	IsSeed      bool     `json:"is_seed"`
	IsCustom    bool     `json:"is_custom,omitempty"`
	SessionType string   `json:"session_type"`
	MethodID    string   `json:"method_id,omitempty"`
}

type MethodLessonsResponse struct {
	Lessons []MethodLessonView `json:"lessons"`
	Total   int                `json:"total"`
}

// MethodService manages the user-created extension of the catalog. Seed
// methods are immutable; custom methods may only be changed by their creator.
type MethodService interface {
	CreateMethod(ctx context.Context, username string, req *model.CreateMethodRequest) (*CreateMethodResponse, error)
	UpdateMethod(ctx context.Context, username, methodID string, req *model.UpdateMethodRequest) error
	DeleteMethod(ctx context.Context, username, methodID string) error
	CreateLesson(ctx context.Context, username, methodID string, req *model.CreateLessonRequest) (*CreateLessonResponse, error)
	CreateLessonsBatch(ctx context.Context, username, methodID string, req *model.BatchLessonRequest) (*BatchLessonResponse, error)
	UpdateLesson(ctx context.Context, username, lessonID string, req *model.UpdateLessonRequest) error
	DeleteLesson(ctx context.Context, username, lessonID string) error
	ReorderLessons(ctx context.Context, username, methodID string, req *model.ReorderLessonsRequest) error
	MethodLessons(ctx context.Context, methodID string) (*MethodLessonsResponse, error)
}

type methodService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	clock       Clock
}

func NewMethodService(db *gorm.DB, catalogRepo repository.CatalogRepository, clock Clock) MethodService {
	if clock == nil {
		clock = time.Now
	}
	return &methodService{db: db, catalogRepo: catalogRepo, clock: clock}
}

func invalidMethodIDError() error {
	return model.NewAppError("INVALID_METHOD_ID", "ID de método inválido", "", model.ErrInvalidInput)
}

func methodNotFoundError() error {
	return model.NewAppError("METHOD_NOT_FOUND", "Método não encontrado ou é um método padrão (não editável)", "", model.ErrNotFound)
}

func (s *methodService) CreateMethod(ctx context.Context, username string, req *model.CreateMethodRequest) (*CreateMethodResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !catalog.IsProgressiveSession(req.SessionType) {
		return nil, invalidSessionError()
	}

	method := &model.CustomMethod{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Author:      req.Author,
		Category:    req.Category,
		SessionType: req.SessionType,
		CreatedBy:   username,
		CreatedAt:   s.clock().UTC(),
	}
	if err := s.catalogRepo.CreateMethod(ctx, s.db, method); err != nil {
		logger.Error("Failed to create custom method", "error", err)
		return nil, internalError(err)
	}

	return &CreateMethodResponse{
		Message: "Método criado com sucesso",
		Method: catalog.MethodView{
			ID:          method.ID,
			Name:        method.Name,
			Author:      method.Author,
			Category:    method.Category,
			SessionType: method.SessionType,
			IsCustom:    true,
		},
	}, nil
}

// findOwnedMethod loads a custom method and enforces the owner-only rule for
// mutations.
func (s *methodService) findOwnedMethod(ctx context.Context, db *gorm.DB, username, methodID string) (*model.CustomMethod, error) {
	if _, err := uuid.Parse(methodID); err != nil {
		return nil, invalidMethodIDError()
	}

	method, err := s.catalogRepo.FindMethod(ctx, db, methodID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, methodNotFoundError()
	}
	if err != nil {
		return nil, internalError(err)
	}

	if method.CreatedBy != "" && method.CreatedBy != username {
		return nil, model.NewAppError("FORBIDDEN", "Você não tem permissão para alterar este método", "", model.ErrForbidden)
	}
	return method, nil
}

func (s *methodService) UpdateMethod(ctx context.Context, username, methodID string, req *model.UpdateMethodRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		method, err := s.findOwnedMethod(ctx, tx, username, methodID)
		if err != nil {
			return err
		}

		updated := false
		if req.Name != nil {
			method.Name = *req.Name
			updated = true
		}
		if req.Author != nil {
			method.Author = *req.Author
			updated = true
		}
		if req.Category != nil {
			method.Category = *req.Category
			updated = true
		}
		if !updated {
			return model.NewAppError("NO_FIELDS", "Nenhum campo para atualizar", "", model.ErrInvalidInput)
		}

		if err := s.catalogRepo.SaveMethod(ctx, tx, method); err != nil {
			logger.Error("Failed to update custom method", "error", err)
			return internalError(err)
		}
		return nil
	})
}

func (s *methodService) DeleteMethod(ctx context.Context, username, methodID string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwnedMethod(ctx, tx, username, methodID); err != nil {
			return err
		}
		if err := s.catalogRepo.DeleteMethod(ctx, tx, methodID); err != nil {
			logger.Error("Failed to delete custom method", "error", err)
			return internalError(err)
		}
		return nil
	})
}

// findMethodForLessonCreate loads a method for appending lessons. Anyone may
// add lessons; only mutations of the method itself are owner-restricted.
func (s *methodService) findMethodForLessonCreate(ctx context.Context, db *gorm.DB, methodID string) (*model.CustomMethod, error) {
	if _, err := uuid.Parse(methodID); err != nil {
		return nil, invalidMethodIDError()
	}
	method, err := s.catalogRepo.FindMethod(ctx, db, methodID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("METHOD_NOT_FOUND", "Método não encontrado", "", model.ErrNotFound)
	}
	if err != nil {
		return nil, internalError(err)
	}
	return method, nil
}

func (s *methodService) nextLessonOrder(ctx context.Context, db *gorm.DB, methodID string) (int, error) {
	lessons, err := s.catalogRepo.ListLessonsByMethod(ctx, db, methodID)
	if err != nil {
		return 0, err
	}
	maxOrder := 0
	for _, lesson := range lessons {
		if lesson.Order > maxOrder {
			maxOrder = lesson.Order
		}
	}
	return maxOrder + 1, nil
}

func (s *methodService) CreateLesson(ctx context.Context, username, methodID string, req *model.CreateLessonRequest) (*CreateLessonResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *CreateLessonResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		method, err := s.findMethodForLessonCreate(ctx, tx, methodID)
		if err != nil {
			return err
		}

		order, err := s.nextLessonOrder(ctx, tx, methodID)
		if err != nil {
			logger.Error("Failed to compute lesson order", "error", err)
			return internalError(err)
		}

		lesson := model.CustomLesson{
			ID:             uuid.NewString(),
			CustomMethodID: methodID,
			SessionType:    method.SessionType,
			Title:          req.Title,
			Subtitle:       req.Subtitle,
			Instruction:    req.Instruction,
			Level:          req.Level,
			Tags:           model.StringSlice(req.Tags),
			Order:          order,
			CreatedBy:      username,
			CreatedAt:      s.clock().UTC(),
		}
		if err := s.catalogRepo.CreateLessons(ctx, tx, []model.CustomLesson{lesson}); err != nil {
			logger.Error("Failed to create custom lesson", "error", err)
			return internalError(err)
		}

		resp = &CreateLessonResponse{
			Message: "Lição criada com sucesso",
			Lesson:  CreatedLessonRef{ID: lesson.ID, Title: lesson.Title, Order: lesson.Order},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateLessonsBatch appends count numbered lessons in one call, e.g.
// "Wohlfahrt 1" through "Wohlfahrt 60".
func (s *methodService) CreateLessonsBatch(ctx context.Context, username, methodID string, req *model.BatchLessonRequest) (*BatchLessonResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *BatchLessonResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		method, err := s.findMethodForLessonCreate(ctx, tx, methodID)
		if err != nil {
			return err
		}

		startOrder, err := s.nextLessonOrder(ctx, tx, methodID)
		if err != nil {
			logger.Error("Failed to compute lesson order", "error", err)
			return internalError(err)
		}

		now := s.clock().UTC()
		lessons := make([]model.CustomLesson, 0, req.Count)
		for i := 1; i <= req.Count; i++ {
			lessons = append(lessons, model.CustomLesson{
				ID:             uuid.NewString(),
				CustomMethodID: methodID,
				SessionType:    method.SessionType,
				Title:          fmt.Sprintf("%s %d", req.TitlePrefix, i),
				Subtitle:       req.Subtitle,
				Instruction:    req.Instruction,
				Level:          req.Level,
				Tags:           model.StringSlice(req.Tags),
				Order:          startOrder + i - 1,
				CreatedBy:      username,
				CreatedAt:      now,
			})
		}
		if err := s.catalogRepo.CreateLessons(ctx, tx, lessons); err != nil {
			logger.Error("Failed to create custom lessons", "error", err)
			return internalError(err)
		}

		resp = &BatchLessonResponse{
			Message: fmt.Sprintf("%d lições criadas com sucesso", req.Count),
			Count:   req.Count,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *methodService) findOwnedLesson(ctx context.Context, db *gorm.DB, username, lessonID string) (*model.CustomLesson, error) {
	if _, err := uuid.Parse(lessonID); err != nil {
		return nil, model.NewAppError("INVALID_LESSON_ID", "ID de lição inválido", "", model.ErrInvalidInput)
	}

	lesson, err := s.catalogRepo.FindLesson(ctx, db, lessonID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("LESSON_NOT_FOUND", "Lição não encontrada ou é uma lição padrão (não editável)", "", model.ErrNotFound)
	}
	if err != nil {
		return nil, internalError(err)
	}

	if lesson.CreatedBy != "" && lesson.CreatedBy != username {
		return nil, model.NewAppError("FORBIDDEN", "Você não tem permissão para alterar esta lição", "", model.ErrForbidden)
	}
	return lesson, nil
}

func (s *methodService) UpdateLesson(ctx context.Context, username, lessonID string, req *model.UpdateLessonRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.findOwnedLesson(ctx, tx, username, lessonID)
		if err != nil {
			return err
		}

		updated := false
		if req.Title != nil {
			lesson.Title = *req.Title
			updated = true
		}
		if req.Subtitle != nil {
			lesson.Subtitle = *req.Subtitle
			updated = true
		}
		if req.Instruction != nil {
			lesson.Instruction = *req.Instruction
			updated = true
		}
		if req.Level != nil {
			lesson.Level = *req.Level
			updated = true
		}
		if req.Tags != nil {
			lesson.Tags = model.StringSlice(*req.Tags)
			updated = true
		}
		if !updated {
			return model.NewAppError("NO_FIELDS", "Nenhum campo para atualizar", "", model.ErrInvalidInput)
		}

		if err := s.catalogRepo.SaveLesson(ctx, tx, lesson); err != nil {
			logger.Error("Failed to update custom lesson", "error", err)
			return internalError(err)
		}
		return nil
	})
}

func (s *methodService) DeleteLesson(ctx context.Context, username, lessonID string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwnedLesson(ctx, tx, username, lessonID); err != nil {
			return err
		}
		if err := s.catalogRepo.DeleteLesson(ctx, tx, lessonID); err != nil {
			logger.Error("Failed to delete custom lesson", "error", err)
			return internalError(err)
		}
		return nil
	})
}

// ReorderLessons rewrites the order column to match the given id sequence.
// Ids that do not belong to the method are skipped.
func (s *methodService) ReorderLessons(ctx context.Context, username, methodID string, req *model.ReorderLessonsRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findMethodForLessonCreate(ctx, tx, methodID); err != nil {
			return err
		}

		for idx, lessonID := range req.LessonIDs {
			lesson, err := s.catalogRepo.FindLesson(ctx, tx, lessonID)
			if err != nil || lesson.CustomMethodID != methodID {
				continue
			}
			lesson.Order = idx + 1
			if err := s.catalogRepo.SaveLesson(ctx, tx, lesson); err != nil {
				logger.Error("Failed to reorder lesson", "lesson_id", lessonID, "error", err)
				return internalError(err)
			}
		}
		return nil
	})
}

// MethodLessons lists the lessons of one method, seed or custom.
func (s *methodService) MethodLessons(ctx context.Context, methodID string) (*MethodLessonsResponse, error) {
	logger := middleware.GetLogger(ctx)

	if _, ok := catalog.MethodByID(methodID); ok {
		lessons := []MethodLessonView{}
		for sessionType, sessionLessons := range catalog.SeedLessons() {
			for _, lesson := range sessionLessons {
				if lesson.MethodID != methodID {
					continue
				}
				lessons = append(lessons, MethodLessonView{
					ID:          lesson.ID,
					Title:       lesson.Title,
					Subtitle:    lesson.Subtitle,
					Instruction: lesson.Instruction,
					Level:       lesson.Level,
					Tags:        lesson.Tags,
					IsSeed:      true,
					SessionType: sessionType,
					MethodID:    lesson.MethodID,
				})
			}
		}
		return &MethodLessonsResponse{Lessons: lessons, Total: len(lessons)}, nil
	}

	if _, err := s.findMethodForLessonCreate(ctx, s.db, methodID); err != nil {
		return nil, err
	}

	customLessons, err := s.catalogRepo.ListLessonsByMethod(ctx, s.db, methodID)
	if err != nil {
		logger.Error("Failed to list custom lessons", "error", err)
		return nil, internalError(err)
	}

	lessons := make([]MethodLessonView, 0, len(customLessons))
	for _, lesson := range customLessons {
		lessons = append(lessons, MethodLessonView{
			ID:          lesson.ID,
			Title:       lesson.Title,
			Subtitle:    lesson.Subtitle,
			Instruction: lesson.Instruction,
			Level:       lesson.Level,
			Tags:        lesson.Tags,
			Order:       lesson.Order,
			IsCustom:    true,
			SessionType: lesson.SessionType,
		})
	}
	return &MethodLessonsResponse{Lessons: lessons, Total: len(lessons)}, nil
}
