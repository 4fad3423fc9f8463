// internal/service/stats_service.go
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"violin_study_plan/internal/catalog"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"gorm.io/gorm"
)

type SessionStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Current   int `json:"current"`
}

type StatsResponse struct {
	TotalLessons         int                    `json:"total_lessons"`
	CompletedLessons     int                    `json:"completed_lessons"`
	CompletionPercentage float64                `json:"completion_percentage"`
	Level                string                 `json:"level"`
	LevelInfo            catalog.LevelInfo      `json:"level_info"`
	StudiesCompleted     int                    `json:"studies_completed"`
	PracticeDays         int                    `json:"practice_days"`
	TotalPracticeTimeSec int                    `json:"total_practice_time_sec"`
	FirstPracticeDate    *string                `json:"first_practice_date"`
	SessionProgress      map[string]SessionStat `json:"session_progress"`
}

type CalendarDay struct {
	Date          string `json:"date"`
	Studied       bool   `json:"studied"`
	TotalTimeSec  int    `json:"total_time_sec"`
	SessionsCount int    `json:"sessions_count"`
}

type CalendarResponse struct {
	PracticeDates model.StringSlice `json:"practice_dates"`
	CalendarData  []CalendarDay     `json:"calendar_data"`
	TotalDays     int               `json:"total_days"`
}

type StatsService interface {
	GetStats(ctx context.Context, username string) (*StatsResponse, error)
	GetCalendar(ctx context.Context, username string) (*CalendarResponse, error)
}

type statsService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
	dailyLogRepo repository.DailyLogRepository
	catalogRepo  repository.CatalogRepository
	clock        Clock
}

func NewStatsService(db *gorm.DB, progressRepo repository.ProgressRepository, dailyLogRepo repository.DailyLogRepository, catalogRepo repository.CatalogRepository, clock Clock) StatsService {
	if clock == nil {
		clock = time.Now
	}
	return &statsService{
		db:           db,
		progressRepo: progressRepo,
		dailyLogRepo: dailyLogRepo,
		catalogRepo:  catalogRepo,
		clock:        clock,
	}
}

// GetStats projects the stored progress into the dashboard numbers. The
// player level comes exclusively from the études (studies) session.
func (s *statsService) GetStats(ctx context.Context, username string) (*StatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	userProgress, err := s.progressRepo.GetUserProgress(ctx, s.db, username)
	if errors.Is(err, model.ErrNotFound) {
		userProgress = &model.UserProgress{Username: username, PracticeDates: model.StringSlice{}}
	} else if err != nil {
		logger.Error("Failed to load user progress", "error", err)
		return nil, internalError(err)
	}

	sessions, err := s.progressRepo.ListSessions(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list session progress", "error", err)
		return nil, internalError(err)
	}
	sessionsByType := make(map[string]*model.SessionProgress, len(sessions))
	for _, session := range sessions {
		sessionsByType[session.SessionType] = session
	}

	totalLessons := 0
	completedLessons := 0
	studiesCompleted := 0
	sessionProgress := make(map[string]SessionStat)

	for _, sessionType := range catalog.ProgressiveSessionIDs() {
		custom, err := s.catalogRepo.ListLessonsBySession(ctx, s.db, sessionType)
		if err != nil {
			logger.Error("Failed to list custom lessons", "error", err)
			return nil, internalError(err)
		}
		merged := catalog.MergeLessons(sessionType, custom)
		totalLessons += len(merged)

		stat := SessionStat{Total: len(merged), Current: 1}
		if session, ok := sessionsByType[sessionType]; ok {
			stat.Completed = len(session.CompletedLessons)
			stat.Current = session.CurrentLesson
		}
		completedLessons += stat.Completed
		if sessionType == "studies" {
			studiesCompleted = stat.Completed
		}
		sessionProgress[sessionType] = stat
	}

	completionPercentage := 0.0
	if totalLessons > 0 {
		completionPercentage = math.Round(float64(completedLessons)/float64(totalLessons)*1000) / 10
	}

	totalTime := 0
	logs, err := s.dailyLogRepo.ListByUser(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list daily logs", "error", err)
		return nil, internalError(err)
	}
	for _, log := range logs {
		totalTime += log.TotalTimeSec
	}

	levelInfo := catalog.ClassifyLevel(studiesCompleted)

	return &StatsResponse{
		TotalLessons:         totalLessons,
		CompletedLessons:     completedLessons,
		CompletionPercentage: completionPercentage,
		Level:                levelInfo.Level,
		LevelInfo:            levelInfo,
		StudiesCompleted:     studiesCompleted,
		PracticeDays:         len(userProgress.PracticeDates),
		TotalPracticeTimeSec: totalTime,
		FirstPracticeDate:    userProgress.FirstPracticeDate,
		SessionProgress:      sessionProgress,
	}, nil
}

// GetCalendar lists every practiced day with the matching daily-log detail.
func (s *statsService) GetCalendar(ctx context.Context, username string) (*CalendarResponse, error) {
	logger := middleware.GetLogger(ctx)

	practiceDates := model.StringSlice{}
	userProgress, err := s.progressRepo.GetUserProgress(ctx, s.db, username)
	if err == nil {
		practiceDates = userProgress.PracticeDates
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load user progress", "error", err)
		return nil, internalError(err)
	}

	logs, err := s.dailyLogRepo.ListByUser(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list daily logs", "error", err)
		return nil, internalError(err)
	}
	logsByDate := make(map[string]model.DailyLog, len(logs))
	for _, log := range logs {
		logsByDate[log.Date] = log
	}

	calendarData := make([]CalendarDay, 0, len(practiceDates))
	for _, date := range practiceDates {
		day := CalendarDay{Date: date, Studied: true}
		if log, ok := logsByDate[date]; ok {
			day.TotalTimeSec = log.TotalTimeSec
			day.SessionsCount = len(log.SessionsPracticed)
		}
		calendarData = append(calendarData, day)
	}

	return &CalendarResponse{
		PracticeDates: practiceDates,
		CalendarData:  calendarData,
		TotalDays:     len(practiceDates),
	}, nil
}
