// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"violin_study_plan/internal/catalog"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"gorm.io/gorm"
)

// View types for the read-only catalog surface. They mirror what the web
// client consumes, so field names stay stable.

type RootResponse struct {
	Message      string `json:"message"`
	Version      string `json:"version"`
	TotalLessons int    `json:"total_lessons"`
}

type SessionTypeView struct {
	catalog.SessionType
	DurationSec  int `json:"duration_sec"`
	TotalLessons int `json:"total_lessons"`
}

type SessionTypesResponse struct {
	Sessions     []SessionTypeView `json:"sessions"`
	TotalTimeSec int               `json:"total_time_sec"`
}

type SessionInfoView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	DurationSec int    `json:"duration_sec"`
	Lessons     int    `json:"lessons"`
	Kind        string `json:"type"`
}

type SessionInfoResponse struct {
	Sessions     []SessionInfoView `json:"sessions"`
	Tips         map[string]string `json:"tips"`
	TotalLessons int               `json:"total_lessons"`
}

type LessonView struct {
	catalog.Lesson
	Method       string `json:"method,omitempty"`
	MethodAuthor string `json:"method_author,omitempty"`
}

type LessonsResponse struct {
	SessionType string       `json:"session_type"`
	Lessons     []LessonView `json:"lessons"`
	Total       int          `json:"total"`
	Tip         string       `json:"tip"`
}

type MethodsResponse struct {
	Methods []catalog.MethodView `json:"methods"`
}

type LevelThresholdsResponse struct {
	Thresholds []catalog.LevelBracket `json:"thresholds"`
}

type WarmupChecklistResponse struct {
	Checklist []catalog.ChecklistItem `json:"checklist"`
	Tip       string                  `json:"tip"`
}

type CatalogService interface {
	Root(ctx context.Context) *RootResponse
	SessionTypes(ctx context.Context) (*SessionTypesResponse, error)
	SessionInfo(ctx context.Context) (*SessionInfoResponse, error)
	Lessons(ctx context.Context, sessionType string) (*LessonsResponse, error)
	Methods(ctx context.Context) (*MethodsResponse, error)
	LevelThresholds(ctx context.Context) *LevelThresholdsResponse
	WarmupChecklist(ctx context.Context) *WarmupChecklistResponse
}

type catalogService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	settingsRepo repository.SettingsRepository
	clock        Clock
}

func NewCatalogService(db *gorm.DB, catalogRepo repository.CatalogRepository, settingsRepo repository.SettingsRepository, clock Clock) CatalogService {
	if clock == nil {
		clock = time.Now
	}
	return &catalogService{db: db, catalogRepo: catalogRepo, settingsRepo: settingsRepo, clock: clock}
}

func (s *catalogService) Root(ctx context.Context) *RootResponse {
	return &RootResponse{
		Message:      "Violin Study Plan API",
		Version:      "2.0",
		TotalLessons: catalog.TotalSeedLessons(),
	}
}

// currentDurations reads the configured session durations, falling back to
// the catalog defaults when settings were never written.
func (s *catalogService) currentDurations(ctx context.Context) map[string]int {
	durations := make(map[string]int)
	for _, sessionType := range catalog.SessionTypes() {
		durations[sessionType.ID] = sessionType.DefaultDurationSec
	}
	settings, err := s.settingsRepo.Get(ctx, s.db)
	if err != nil {
		return durations
	}
	for id, sec := range settings.SessionDurations {
		durations[id] = sec
	}
	return durations
}

// mergedBySession returns the merged lesson lists for every progressive track.
func (s *catalogService) mergedBySession(ctx context.Context) (map[string][]catalog.Lesson, error) {
	merged := make(map[string][]catalog.Lesson)
	for _, sessionType := range catalog.ProgressiveSessionIDs() {
		custom, err := s.catalogRepo.ListLessonsBySession(ctx, s.db, sessionType)
		if err != nil {
			return nil, err
		}
		merged[sessionType] = catalog.MergeLessons(sessionType, custom)
	}
	return merged, nil
}

func (s *catalogService) SessionTypes(ctx context.Context) (*SessionTypesResponse, error) {
	logger := middleware.GetLogger(ctx)

	durations := s.currentDurations(ctx)
	merged, err := s.mergedBySession(ctx)
	if err != nil {
		logger.Error("Failed to merge lessons", "error", err)
		return nil, internalError(err)
	}

	sessions := make([]SessionTypeView, 0, len(catalog.SessionTypes()))
	for _, sessionType := range catalog.SessionTypes() {
		view := SessionTypeView{
			SessionType: sessionType,
			DurationSec: durations[sessionType.ID],
		}
		if sessionType.Kind == catalog.KindProgressive {
			view.TotalLessons = len(merged[sessionType.ID])
		}
		sessions = append(sessions, view)
	}

	return &SessionTypesResponse{Sessions: sessions, TotalTimeSec: hourBudgetSec}, nil
}

func (s *catalogService) SessionInfo(ctx context.Context) (*SessionInfoResponse, error) {
	logger := middleware.GetLogger(ctx)

	durations := s.currentDurations(ctx)
	merged, err := s.mergedBySession(ctx)
	if err != nil {
		logger.Error("Failed to merge lessons", "error", err)
		return nil, internalError(err)
	}

	sessionTypes := catalog.SessionTypes()
	tips := make(map[string]string, len(sessionTypes))
	sessions := make([]SessionInfoView, 0, len(sessionTypes))
	total := 0
	offset := 0
	for _, sessionType := range sessionTypes {
		tips[sessionType.ID] = sessionType.Tip
		duration := durations[sessionType.ID]

		lessonCount := 0
		if sessionType.Kind == catalog.KindProgressive {
			lessonCount = len(merged[sessionType.ID])
			total += lessonCount
		}

		sessions = append(sessions, SessionInfoView{
			ID:          sessionType.ID,
			Name:        sessionType.Name,
			Icon:        sessionType.Icon,
			Time:        fmt.Sprintf("%02d:00–%02d:00", offset/60, (offset+duration)/60),
			Duration:    duration / 60,
			DurationSec: duration,
			Lessons:     lessonCount,
			Kind:        sessionType.Kind,
		})
		offset += duration
	}

	return &SessionInfoResponse{Sessions: sessions, Tips: tips, TotalLessons: total}, nil
}

func (s *catalogService) Lessons(ctx context.Context, sessionType string) (*LessonsResponse, error) {
	logger := middleware.GetLogger(ctx)

	config, ok := catalog.SessionTypeByID(sessionType)
	if !ok || config.Kind != catalog.KindProgressive {
		return nil, model.NewAppError("SESSION_TYPE_NOT_FOUND", "Tipo de sessão não encontrado", "", model.ErrNotFound)
	}

	custom, err := s.catalogRepo.ListLessonsBySession(ctx, s.db, sessionType)
	if err != nil {
		logger.Error("Failed to list custom lessons", "error", err)
		return nil, internalError(err)
	}
	merged := catalog.MergeLessons(sessionType, custom)

	customMethods, err := s.catalogRepo.ListMethods(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list custom methods", "error", err)
		return nil, internalError(err)
	}
	methodsByID := make(map[string]catalog.MethodView)
	for _, method := range catalog.MergeMethods(customMethods) {
		methodsByID[method.ID] = method
	}

	lessons := make([]LessonView, 0, len(merged))
	for _, lesson := range merged {
		view := LessonView{Lesson: lesson}
		methodID := lesson.MethodID
		if methodID == "" {
			methodID = lesson.CustomMethodID
		}
		if method, ok := methodsByID[methodID]; ok {
			view.Method = method.Name
			view.MethodAuthor = method.Author
		}
		lessons = append(lessons, view)
	}

	return &LessonsResponse{
		SessionType: sessionType,
		Lessons:     lessons,
		Total:       len(lessons),
		Tip:         config.Tip,
	}, nil
}

func (s *catalogService) Methods(ctx context.Context) (*MethodsResponse, error) {
	logger := middleware.GetLogger(ctx)

	customMethods, err := s.catalogRepo.ListMethods(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list custom methods", "error", err)
		return nil, internalError(err)
	}
	return &MethodsResponse{Methods: catalog.MergeMethods(customMethods)}, nil
}

func (s *catalogService) LevelThresholds(ctx context.Context) *LevelThresholdsResponse {
	return &LevelThresholdsResponse{Thresholds: catalog.LevelThresholds()}
}

func (s *catalogService) WarmupChecklist(ctx context.Context) *WarmupChecklistResponse {
	tip := ""
	if sessionType, ok := catalog.SessionTypeByID("warmup"); ok {
		tip = sessionType.Tip
	}
	return &WarmupChecklistResponse{Checklist: catalog.WarmupChecklist(), Tip: tip}
}
