// internal/service/export_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"violin_study_plan/internal/catalog"
	"violin_study_plan/internal/config"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"gorm.io/gorm"
)

// ExportService moves whole per-user snapshots in and out of the store and
// handles the full reset.
type ExportService interface {
	Export(ctx context.Context, username string) (*model.ExportDataResponse, error)
	PreviewImport(ctx context.Context, username string, req *model.ImportDataRequest) (*model.ImportPreviewResponse, error)
	Import(ctx context.Context, username string, req *model.ImportDataRequest) error
	Reset(ctx context.Context, username string) error
}

type exportService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	warmupRepo   repository.WarmupRepository
	dailyLogRepo repository.DailyLogRepository
	settingsRepo repository.SettingsRepository
	activityRepo repository.ActivityRepository
	clock        Clock
}

func NewExportService(db *gorm.DB, userRepo repository.UserRepository, progressRepo repository.ProgressRepository, warmupRepo repository.WarmupRepository, dailyLogRepo repository.DailyLogRepository, settingsRepo repository.SettingsRepository, activityRepo repository.ActivityRepository, clock Clock) ExportService {
	if clock == nil {
		clock = time.Now
	}
	return &exportService{
		db:           db,
		userRepo:     userRepo,
		progressRepo: progressRepo,
		warmupRepo:   warmupRepo,
		dailyLogRepo: dailyLogRepo,
		settingsRepo: settingsRepo,
		activityRepo: activityRepo,
		clock:        clock,
	}
}

// snapshotProgress folds the stored per-session rows and the user aggregate
// into the portable progress document. Returns nil when the user has none.
func (s *exportService) snapshotProgress(ctx context.Context, db *gorm.DB, username string) (*model.ProgressSnapshot, error) {
	userProgress, err := s.progressRepo.GetUserProgress(ctx, db, username)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sessions, err := s.progressRepo.ListSessions(ctx, db, username)
	if err != nil {
		return nil, err
	}

	snapshot := &model.ProgressSnapshot{
		Sessions:          make(map[string]model.SessionSnapshot),
		PracticeDates:     userProgress.PracticeDates,
		FirstPracticeDate: userProgress.FirstPracticeDate,
		CreatedAt:         userProgress.CreatedAt,
	}
	for _, session := range sessions {
		snapshot.Sessions[session.SessionType] = model.SessionSnapshot{
			CurrentLesson:    session.CurrentLesson,
			CompletedLessons: session.CompletedLessons,
			PracticeCounts:   session.PracticeCounts,
			LastPracticed:    session.LastPracticed,
			Notes:            session.Notes,
		}
	}
	return snapshot, nil
}

func (s *exportService) Export(ctx context.Context, username string) (*model.ExportDataResponse, error) {
	logger := middleware.GetLogger(ctx)

	progress, err := s.snapshotProgress(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to snapshot progress", "error", err)
		return nil, internalError(err)
	}

	warmups, err := s.warmupRepo.ListByUser(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list warmups", "error", err)
		return nil, internalError(err)
	}

	dailyLogs, err := s.dailyLogRepo.ListByUser(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list daily logs", "error", err)
		return nil, internalError(err)
	}

	settings, err := s.settingsRepo.Get(ctx, s.db)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load settings", "error", err)
		return nil, internalError(err)
	}

	var userInfo *model.ExportUserInfo
	if user, err := s.userRepo.FindByUsername(ctx, s.db, username); err == nil {
		userInfo = &model.ExportUserInfo{
			Username:     user.Username,
			CreatedAt:    user.CreatedAt,
			FirstLoginAt: user.FirstLoginAt,
		}
	}

	return &model.ExportDataResponse{
		Data: model.ExportData{
			Progress:  progress,
			Warmups:   warmups,
			DailyLogs: dailyLogs,
			Settings:  settings,
			User:      userInfo,
		},
		ExportedAt: s.clock().UTC().Format(time.RFC3339),
		Version:    config.ExportVersion,
	}, nil
}

// PreviewImport summarizes what an import would bring in and warns when it
// would overwrite completed work.
func (s *exportService) PreviewImport(ctx context.Context, username string, req *model.ImportDataRequest) (*model.ImportPreviewResponse, error) {
	logger := middleware.GetLogger(ctx)
	data := req.Data

	summary := map[string]any{
		"has_progress":     data.Progress != nil,
		"warmups_count":    len(data.Warmups),
		"daily_logs_count": len(data.DailyLogs),
		"has_settings":     data.Settings != nil,
	}

	warnings := []string{}
	current, err := s.snapshotProgress(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to snapshot current progress", "error", err)
		return nil, internalError(err)
	}
	if current != nil {
		completed := 0
		for _, session := range current.Sessions {
			completed += len(session.CompletedLessons)
		}
		if completed > 0 {
			warnings = append(warnings, fmt.Sprintf("Você tem %d lições concluídas que serão substituídas", completed))
		}
	}

	return &model.ImportPreviewResponse{Valid: true, Summary: summary, Warnings: warnings}, nil
}

// Import replaces the user's documents with the snapshot, section by section.
// Sections absent from the snapshot are left untouched. Daily-log totals are
// recomputed on the way in rather than trusted.
func (s *exportService) Import(ctx context.Context, username string, req *model.ImportDataRequest) error {
	logger := middleware.GetLogger(ctx)
	data := req.Data

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if data.Progress != nil {
			if err := s.progressRepo.DeleteAllForUser(ctx, tx, username); err != nil {
				logger.Error("Failed to clear progress", "error", err)
				return internalError(err)
			}

			createdAt := data.Progress.CreatedAt
			if createdAt.IsZero() {
				createdAt = s.clock().UTC()
			}
			userProgress := &model.UserProgress{
				Username:          username,
				PracticeDates:     data.Progress.PracticeDates,
				FirstPracticeDate: data.Progress.FirstPracticeDate,
				CreatedAt:         createdAt,
			}
			if userProgress.PracticeDates == nil {
				userProgress.PracticeDates = model.StringSlice{}
			}
			if err := s.progressRepo.SaveUserProgress(ctx, tx, userProgress); err != nil {
				logger.Error("Failed to import user progress", "error", err)
				return internalError(err)
			}

			for _, sessionType := range catalog.ProgressiveSessionIDs() {
				session := model.NewSessionProgress(username, sessionType)
				if snapshot, ok := data.Progress.Sessions[sessionType]; ok {
					session.CurrentLesson = snapshot.CurrentLesson
					if session.CurrentLesson < 1 {
						session.CurrentLesson = 1
					}
					if snapshot.CompletedLessons != nil {
						session.CompletedLessons = snapshot.CompletedLessons
					}
					if snapshot.PracticeCounts != nil {
						session.PracticeCounts = snapshot.PracticeCounts
					}
					if snapshot.LastPracticed != nil {
						session.LastPracticed = snapshot.LastPracticed
					}
					if snapshot.Notes != nil {
						session.Notes = snapshot.Notes
					}
				}
				if err := s.progressRepo.SaveSession(ctx, tx, session); err != nil {
					logger.Error("Failed to import session progress", "error", err)
					return internalError(err)
				}
			}
		}

		if len(data.Warmups) > 0 {
			if err := s.warmupRepo.DeleteByUser(ctx, tx, username); err != nil {
				logger.Error("Failed to clear warmups", "error", err)
				return internalError(err)
			}
			for _, warmup := range data.Warmups {
				warmup.Username = username
				if err := s.warmupRepo.Save(ctx, tx, &warmup); err != nil {
					logger.Error("Failed to import warmup", "error", err)
					return internalError(err)
				}
			}
		}

		if len(data.DailyLogs) > 0 {
			if err := s.dailyLogRepo.DeleteByUser(ctx, tx, username); err != nil {
				logger.Error("Failed to clear daily logs", "error", err)
				return internalError(err)
			}
			for _, log := range data.DailyLogs {
				log.Username = username
				if log.SessionsPracticed == nil {
					log.SessionsPracticed = model.StringSlice{}
				}
				if log.SessionTimes == nil {
					log.SessionTimes = model.StringIntMap{}
				}
				log.RecomputeTotal()
				if err := s.dailyLogRepo.Save(ctx, tx, &log); err != nil {
					logger.Error("Failed to import daily log", "error", err)
					return internalError(err)
				}
			}
		}

		if data.Settings != nil {
			if err := s.settingsRepo.Save(ctx, tx, data.Settings); err != nil {
				logger.Error("Failed to import settings", "error", err)
				return internalError(err)
			}
		}

		return nil
	})
}

// Reset wipes every per-user document and re-creates the empty progress.
func (s *exportService) Reset(ctx context.Context, username string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progressRepo.DeleteAllForUser(ctx, tx, username); err != nil {
			logger.Error("Failed to clear progress", "error", err)
			return internalError(err)
		}
		if err := s.warmupRepo.DeleteByUser(ctx, tx, username); err != nil {
			logger.Error("Failed to clear warmups", "error", err)
			return internalError(err)
		}
		if err := s.dailyLogRepo.DeleteByUser(ctx, tx, username); err != nil {
			logger.Error("Failed to clear daily logs", "error", err)
			return internalError(err)
		}
		if err := s.activityRepo.DeleteByUser(ctx, tx, username); err != nil {
			logger.Error("Failed to clear activity log", "error", err)
			return internalError(err)
		}
		if err := initUserProgress(ctx, tx, s.progressRepo, username, s.clock().UTC()); err != nil {
			logger.Error("Failed to re-initialize progress", "error", err)
			return internalError(err)
		}
		return nil
	})
}
