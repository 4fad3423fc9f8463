// internal/service/progress_service.go
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

type ProgressService interface {
	GetProgress(ctx context.Context, username string) (*model.ProgressResponse, error)
	LogPractice(ctx context.Context, username string, req *model.PracticeLogRequest) (*model.PracticeLogResponse, error)
	AdvanceLesson(ctx context.Context, username string, req *model.AdvanceLessonRequest) (*model.AdvanceLessonResponse, error)
	JumpToLesson(ctx context.Context, username string, req *model.JumpToLessonRequest) (*model.JumpToLessonResponse, error)
	UpdateNotes(ctx context.Context, username string, req *model.UpdateNotesRequest) error
	CheckWarmupItem(ctx context.Context, username string, req *model.WarmupCheckRequest) (*model.WarmupCheckResponse, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
	warmupRepo   repository.WarmupRepository
	dailyLogRepo repository.DailyLogRepository
	catalogRepo  repository.CatalogRepository
	activityRepo repository.ActivityRepository
	clock        Clock
}

func NewProgressService(db *gorm.DB, progressRepo repository.ProgressRepository, warmupRepo repository.WarmupRepository, dailyLogRepo repository.DailyLogRepository, catalogRepo repository.CatalogRepository, activityRepo repository.ActivityRepository, clock Clock) ProgressService {
	if clock == nil {
		clock = time.Now
	}
	return &progressService{
		db:           db,
		progressRepo: progressRepo,
		warmupRepo:   warmupRepo,
		dailyLogRepo: dailyLogRepo,
		catalogRepo:  catalogRepo,
		activityRepo: activityRepo,
		clock:        clock,
	}
}

// initUserProgress creates the user-level aggregate and the six empty session
// tracks for a user that has none yet.
func initUserProgress(ctx context.Context, tx *gorm.DB, repo repository.ProgressRepository, username string, now time.Time) error {
	userProgress := &model.UserProgress{
		Username:      username,
		PracticeDates: model.StringSlice{},
		CreatedAt:     now,
	}
	if err := repo.SaveUserProgress(ctx, tx, userProgress); err != nil {
		return err
	}
	for _, sessionType := range catalog.ProgressiveSessionIDs() {
		if err := repo.SaveSession(ctx, tx, model.NewSessionProgress(username, sessionType)); err != nil {
			return err
		}
	}
	return nil
}

func invalidSessionError() error {
	return model.NewAppError("INVALID_SESSION_TYPE", "Tipo de sessão inválido", "session_type", model.ErrInvalidInput)
}

func internalError(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
}

// mergedLessons returns the session's seed lessons followed by the custom ones.
func (s *progressService) mergedLessons(ctx context.Context, db *gorm.DB, sessionType string) ([]catalog.Lesson, error) {
	custom, err := s.catalogRepo.ListLessonsBySession(ctx, db, sessionType)
	if err != nil {
		return nil, err
	}
	return catalog.MergeLessons(sessionType, custom), nil
}

// getOrInitUserProgress loads the user aggregate, creating the initial
// documents on first touch.
func (s *progressService) getOrInitUserProgress(ctx context.Context, tx *gorm.DB, username string) (*model.UserProgress, error) {
	userProgress, err := s.progressRepo.GetUserProgress(ctx, tx, username)
	if errors.Is(err, model.ErrNotFound) {
		if err := initUserProgress(ctx, tx, s.progressRepo, username, s.clock().UTC()); err != nil {
			return nil, err
		}
		return s.progressRepo.GetUserProgress(ctx, tx, username)
	}
	return userProgress, err
}

func (s *progressService) getOrInitSession(ctx context.Context, tx *gorm.DB, username, sessionType string) (*model.SessionProgress, error) {
	session, err := s.progressRepo.GetSession(ctx, tx, username, sessionType)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewSessionProgress(username, sessionType), nil
	}
	return session, err
}

func (s *progressService) GetProgress(ctx context.Context, username string) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *model.ProgressResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userProgress, err := s.getOrInitUserProgress(ctx, tx, username)
		if err != nil {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		sessions, err := s.progressRepo.ListSessions(ctx, tx, username)
		if err != nil {
			logger.Error("Failed to list session progress", "error", err)
			return internalError(err)
		}

		sessionMap := make(map[string]*model.SessionProgress, len(catalog.ProgressiveSessionIDs()))
		for _, session := range sessions {
			sessionMap[session.SessionType] = session
		}
		for _, sessionType := range catalog.ProgressiveSessionIDs() {
			if _, ok := sessionMap[sessionType]; !ok {
				sessionMap[sessionType] = model.NewSessionProgress(username, sessionType)
			}
		}

		today := todayString(s.clock)
		warmup, err := s.warmupRepo.Get(ctx, tx, username, today)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load today's warmup", "error", err)
			return internalError(err)
		}

		resp = &model.ProgressResponse{
			Sessions:          sessionMap,
			WarmupToday:       warmup,
			PracticeDates:     userProgress.PracticeDates,
			FirstPracticeDate: userProgress.FirstPracticeDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// LogPractice records one rehearsal of a lesson: bumps its practice count,
// stamps today as last practiced and folds today into the practice-date set.
func (s *progressService) LogPractice(ctx context.Context, username string, req *model.PracticeLogRequest) (*model.PracticeLogResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !catalog.IsProgressiveSession(req.SessionType) {
		return nil, invalidSessionError()
	}

	today := todayString(s.clock)
	var resp *model.PracticeLogResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userProgress, err := s.getOrInitUserProgress(ctx, tx, username)
		if err != nil {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		session, err := s.getOrInitSession(ctx, tx, username, req.SessionType)
		if err != nil {
			logger.Error("Failed to load session progress", "error", err)
			return internalError(err)
		}

		session.PracticeCounts[req.LessonID]++
		session.LastPracticed[req.LessonID] = today
		if err := s.progressRepo.SaveSession(ctx, tx, session); err != nil {
			logger.Error("Failed to save session progress", "error", err)
			return internalError(err)
		}

		if !userProgress.PracticeDates.Contains(today) {
			userProgress.PracticeDates = append(userProgress.PracticeDates, today)
		}
		if userProgress.FirstPracticeDate == nil {
			userProgress.FirstPracticeDate = &today
		}
		if err := s.progressRepo.SaveUserProgress(ctx, tx, userProgress); err != nil {
			logger.Error("Failed to save user progress", "error", err)
			return internalError(err)
		}

		if err := touchDailyLog(ctx, tx, s.dailyLogRepo, username, today, req.SessionType, 0, s.clock().UTC()); err != nil {
			logger.Error("Failed to update daily log", "error", err)
			return internalError(err)
		}

		resp = &model.PracticeLogResponse{
			Message:       "Prática registrada",
			LessonID:      req.LessonID,
			PracticeCount: session.PracticeCounts[req.LessonID],
			Date:          today,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AdvanceLesson moves the cursor one step. Moving forward marks the left
// lesson as completed; at either end the cursor stays put without error.
func (s *progressService) AdvanceLesson(ctx context.Context, username string, req *model.AdvanceLessonRequest) (*model.AdvanceLessonResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !catalog.IsProgressiveSession(req.SessionType) {
		return nil, invalidSessionError()
	}

	var resp *model.AdvanceLessonResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessons, err := s.mergedLessons(ctx, tx, req.SessionType)
		if err != nil {
			logger.Error("Failed to merge lessons", "error", err)
			return internalError(err)
		}
		totalLessons := len(lessons)

		if _, err := s.getOrInitUserProgress(ctx, tx, username); err != nil {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		session, err := s.getOrInitSession(ctx, tx, username, req.SessionType)
		if err != nil {
			logger.Error("Failed to load session progress", "error", err)
			return internalError(err)
		}

		current := session.CurrentLesson
		switch req.Direction {
		case "next":
			if current < totalLessons {
				if !session.CompletedLessons.Contains(current) {
					session.CompletedLessons = append(session.CompletedLessons, current)
				}
				current++
			}
		case "previous":
			if current > 1 {
				current--
			}
		}
		session.CurrentLesson = current

		if err := s.progressRepo.SaveSession(ctx, tx, session); err != nil {
			logger.Error("Failed to save session progress", "error", err)
			return internalError(err)
		}

		resp = &model.AdvanceLessonResponse{
			Message:        fmt.Sprintf("Agora na lição %d", current),
			CurrentLesson:  current,
			TotalLessons:   totalLessons,
			CompletedCount: len(session.CompletedLessons),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// JumpToLesson places the cursor on an arbitrary lesson of the merged track
// and records the jump in the activity log.
func (s *progressService) JumpToLesson(ctx context.Context, username string, req *model.JumpToLessonRequest) (*model.JumpToLessonResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !catalog.IsProgressiveSession(req.SessionType) {
		return nil, invalidSessionError()
	}

	var resp *model.JumpToLessonResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessons, err := s.mergedLessons(ctx, tx, req.SessionType)
		if err != nil {
			logger.Error("Failed to merge lessons", "error", err)
			return internalError(err)
		}
		totalLessons := len(lessons)

		if req.LessonID < 1 || req.LessonID > totalLessons {
			return model.NewAppError("INVALID_LESSON_ID", "ID de lição inválido", "lesson_id", model.ErrInvalidInput)
		}

		if _, err := s.getOrInitUserProgress(ctx, tx, username); err != nil {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		session, err := s.getOrInitSession(ctx, tx, username, req.SessionType)
		if err != nil {
			logger.Error("Failed to load session progress", "error", err)
			return internalError(err)
		}

		session.CurrentLesson = req.LessonID
		if err := s.progressRepo.SaveSession(ctx, tx, session); err != nil {
			logger.Error("Failed to save session progress", "error", err)
			return internalError(err)
		}

		entry := &model.ActivityEntry{
			ID:          uuid.NewString(),
			Username:    username,
			Action:      "jump_to_lesson",
			SessionType: req.SessionType,
			LessonID:    req.LessonID,
			Timestamp:   s.clock().UTC(),
		}
		if err := s.activityRepo.Append(ctx, tx, entry); err != nil {
			logger.Error("Failed to append activity entry", "error", err)
			return internalError(err)
		}

		resp = &model.JumpToLessonResponse{
			Message:       fmt.Sprintf("Pulou para lição %d", req.LessonID),
			CurrentLesson: req.LessonID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *progressService) UpdateNotes(ctx context.Context, username string, req *model.UpdateNotesRequest) error {
	logger := middleware.GetLogger(ctx)

	if !catalog.IsProgressiveSession(req.SessionType) {
		return invalidSessionError()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.getOrInitUserProgress(ctx, tx, username); err != nil {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		session, err := s.getOrInitSession(ctx, tx, username, req.SessionType)
		if err != nil {
			logger.Error("Failed to load session progress", "error", err)
			return internalError(err)
		}

		session.Notes[req.LessonID] = req.Notes
		if err := s.progressRepo.SaveSession(ctx, tx, session); err != nil {
			logger.Error("Failed to save session progress", "error", err)
			return internalError(err)
		}
		return nil
	})
}

// CheckWarmupItem toggles one checklist item of today's warmup, cloning the
// template on first touch of the day. Unknown item ids leave the checklist
// unchanged. Any touch counts as practice for the day.
func (s *progressService) CheckWarmupItem(ctx context.Context, username string, req *model.WarmupCheckRequest) (*model.WarmupCheckResponse, error) {
	logger := middleware.GetLogger(ctx)
	today := todayString(s.clock)

	var resp *model.WarmupCheckResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		warmup, err := s.warmupRepo.Get(ctx, tx, username, today)
		if errors.Is(err, model.ErrNotFound) {
			warmup = newWarmupRecord(username, today)
		} else if err != nil {
			logger.Error("Failed to load warmup record", "error", err)
			return internalError(err)
		}

		found := false
		for i := range warmup.Checklist {
			if warmup.Checklist[i].ID == req.ItemID {
				warmup.Checklist[i].Completed = req.Completed
				found = true
				break
			}
		}
		if !found {
			logger.Warn("Warmup check for unknown item", "item_id", req.ItemID)
		}

		if err := s.warmupRepo.Save(ctx, tx, warmup); err != nil {
			logger.Error("Failed to save warmup record", "error", err)
			return internalError(err)
		}

		userProgress, err := s.progressRepo.GetUserProgress(ctx, tx, username)
		if err == nil {
			if !userProgress.PracticeDates.Contains(today) {
				userProgress.PracticeDates = append(userProgress.PracticeDates, today)
				if userProgress.FirstPracticeDate == nil {
					userProgress.FirstPracticeDate = &today
				}
				if err := s.progressRepo.SaveUserProgress(ctx, tx, userProgress); err != nil {
					logger.Error("Failed to save user progress", "error", err)
					return internalError(err)
				}
			}
		} else if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load user progress", "error", err)
			return internalError(err)
		}

		if err := touchDailyLog(ctx, tx, s.dailyLogRepo, username, today, "warmup", 0, s.clock().UTC()); err != nil {
			logger.Error("Failed to update daily log", "error", err)
			return internalError(err)
		}

		resp = &model.WarmupCheckResponse{
			Message:   "Checklist atualizado",
			Checklist: warmup.Checklist,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// newWarmupRecord clones the template checklist with nothing checked.
func newWarmupRecord(username, date string) *model.WarmupRecord {
	items := make(model.WarmupItems, 0, len(catalog.WarmupChecklist()))
	for _, item := range catalog.WarmupChecklist() {
		items = append(items, model.WarmupItem{ID: item.ID, Text: item.Text, Completed: false})
	}
	return &model.WarmupRecord{Username: username, Date: date, Checklist: items}
}
